// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/propchat/propchat-client/internal/mock"
	"github.com/propchat/propchat-client/internal/service"
	"github.com/propchat/propchat-client/internal/store"
	"github.com/propchat/propchat-client/models"
)

func newTestTokenStore(t *testing.T, ctrl *gomock.Controller) (*service.TokenStore, *mock.MockKVStore) {
	t.Helper()
	kv := mock.NewMockKVStore(ctrl)
	return service.NewTokenStore(kv), kv
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestTokenStore_Load_CompletePair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, kv := newTestTokenStore(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "token").Return("at-1", nil)
	kv.EXPECT().Get(ctx, "refreshToken").Return("rt-1", nil)

	cred, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Credential{AccessToken: "at-1", RefreshToken: "rt-1"}, cred)
}

func TestTokenStore_Load_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, kv := newTestTokenStore(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "token").Return("", store.ErrKVNotFound)
	kv.EXPECT().Get(ctx, "refreshToken").Return("", store.ErrKVNotFound)

	cred, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cred.IsZero())
}

func TestTokenStore_Load_HalfPairIsCleanedUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, kv := newTestTokenStore(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "token").Return("at-1", nil)
	kv.EXPECT().Get(ctx, "refreshToken").Return("", store.ErrKVNotFound)
	kv.EXPECT().Delete(ctx, "token").Return(nil)
	kv.EXPECT().Delete(ctx, "refreshToken").Return(nil)

	cred, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.True(t, cred.IsZero())
}

func TestTokenStore_Load_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, kv := newTestTokenStore(t, ctrl)
	ctx := context.Background()

	storageErr := errors.New("database is locked")
	kv.EXPECT().Get(ctx, "token").Return("", storageErr)

	_, err := tokens.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
}

// ── Save / Clear ─────────────────────────────────────────────────────────────

func TestTokenStore_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, kv := newTestTokenStore(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Set(ctx, "token", "at-1").Return(nil)
	kv.EXPECT().Set(ctx, "refreshToken", "rt-1").Return(nil)

	err := tokens.Save(ctx, models.Credential{AccessToken: "at-1", RefreshToken: "rt-1"})
	require.NoError(t, err)
}

func TestTokenStore_Save_RejectsHalfPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, _ := newTestTokenStore(t, ctrl)

	err := tokens.Save(context.Background(), models.Credential{AccessToken: "at-1"})
	require.Error(t, err)
}

func TestTokenStore_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, kv := newTestTokenStore(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Delete(ctx, "token").Return(nil)
	kv.EXPECT().Delete(ctx, "refreshToken").Return(nil)

	require.NoError(t, tokens.Clear(ctx))
}
