// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/mock"
)

func TestRefreshWorker_ChecksCredentialOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mock.NewMockSessionService(ctrl)
	checked := make(chan struct{}, 1)
	session.EXPECT().
		EnsureValidCredential(gomock.Any()).
		DoAndReturn(func(context.Context) (string, error) {
			select {
			case checked <- struct{}{}:
			default:
			}
			return "at-1", nil
		}).
		MinTimes(1)

	worker := NewRefreshWorker(session, 10*time.Millisecond, logger.Nop())
	worker.Start(context.Background())
	defer worker.Stop()

	select {
	case <-checked:
	case <-time.After(time.Second):
		t.Fatal("credential was never checked")
	}
}

func TestRefreshWorker_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().EnsureValidCredential(gomock.Any()).Return("at-1", nil).AnyTimes()

	worker := NewRefreshWorker(session, time.Millisecond, logger.Nop())
	worker.Start(context.Background())

	worker.Stop()
	worker.Stop()
}

func TestRefreshWorker_StartReplacesRunningWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().EnsureValidCredential(gomock.Any()).Return("at-1", nil).AnyTimes()

	worker := NewRefreshWorker(session, time.Millisecond, logger.Nop())
	worker.Start(context.Background())
	worker.Start(context.Background())
	worker.Stop()
}
