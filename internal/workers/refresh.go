// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/service"
)

// RefreshWorker keeps a long-lived session's bearer token fresh by calling
// EnsureValidCredential on a ticker, so an idle chat never presents an
// expired token on its next request.
type RefreshWorker struct {
	session  service.SessionService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a RefreshWorker that checks the credential every
// interval. The worker is idle until Start or Run is called.
func NewRefreshWorker(session service.SessionService, interval time.Duration, log *logger.Logger) *RefreshWorker {
	return &RefreshWorker{session: session, interval: interval, logger: log}
}

// Run implements Worker. It starts the worker against the background
// context; use Start directly when the caller owns a cancellable context.
func (w *RefreshWorker) Run() {
	w.Start(context.Background())
}

// Start stops any previously running check loop, then launches a background
// goroutine that re-validates the credential every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	interval := w.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				if _, err := w.session.EnsureValidCredential(workerCtx); err != nil {
					w.logger.Warn().Err(err).Str("func", "RefreshWorker").Msg("credential check failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the worker is not running.
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
