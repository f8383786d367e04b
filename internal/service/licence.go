package service

import (
	"context"
	"regexp"
	"sync"

	"github.com/propchat/propchat-client/internal/adapter"
	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/store"
)

// licenceKeyFormat: exactly 43 characters from the base64url alphabet.
var licenceKeyFormat = regexp.MustCompile(`^[A-Za-z0-9_-]{43}$`)

type licenceService struct {
	session SessionService
	adapter adapter.ServerAdapter
	kv      store.KVStore
	logger  *logger.Logger

	mu     sync.RWMutex
	key    string
	loaded bool
}

func NewLicenceService(session SessionService, serverAdapter adapter.ServerAdapter, kv store.KVStore, log *logger.Logger) LicenceService {
	return &licenceService{
		session: session,
		adapter: serverAdapter,
		kv:      kv,
		logger:  log,
	}
}

// Fetch is fail-open: any failure is logged and treated as an empty key, and
// the gate is marked loaded either way, so a flaky backend cannot deadlock
// startup. The UI re-prompts for a key when the loaded value is empty.
func (l *licenceService) Fetch(ctx context.Context) {
	token, err := l.session.EnsureValidCredential(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "Fetch").Msg("no valid credential for licence fetch")
		l.setKey("", true)
		return
	}

	key, err := l.adapter.GetLicenceKey(ctx, token)
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "Fetch").Msg("failed to fetch licence key")
		l.setKey("", true)
		return
	}

	l.setKey(key, true)

	if err := l.kv.Set(ctx, keyLicenceKey, key); err != nil {
		l.logger.Warn().Err(err).Str("func", "Fetch").Msg("failed to mirror licence key to local store")
	}
}

func (l *licenceService) ValidateFormat(key string) bool {
	return licenceKeyFormat.MatchString(key)
}

// Set is optimistic: local state is updated before persistence, and
// persistence failures are logged rather than surfaced. A format-invalid
// key changes nothing.
func (l *licenceService) Set(ctx context.Context, key string) error {
	if !l.ValidateFormat(key) {
		return ErrInvalidLicenceKey
	}

	l.setKey(key, true)

	token, err := l.session.EnsureValidCredential(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "Set").Msg("no valid credential to persist licence key")
		return nil
	}

	if err := l.adapter.SaveLicenceKey(ctx, token, key); err != nil {
		l.logger.Warn().Err(err).Str("func", "Set").Msg("failed to save licence key on server")
	}

	if err := l.kv.Set(ctx, keyLicenceKey, key); err != nil {
		l.logger.Warn().Err(err).Str("func", "Set").Msg("failed to mirror licence key to local store")
	}

	return nil
}

func (l *licenceService) Key() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.key
}

func (l *licenceService) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

func (l *licenceService) setKey(key string, loaded bool) {
	l.mu.Lock()
	l.key = key
	l.loaded = loaded
	l.mu.Unlock()
}
