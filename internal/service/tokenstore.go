// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/propchat/propchat-client/internal/store"
	"github.com/propchat/propchat-client/models"
)

// Durable storage key names, shared with the original backend contract.
const (
	keyToken        = "token"
	keyRefreshToken = "refreshToken"
	keyLicenceKey   = "licenceKey"
)

// TokenStore is a thin semantic layer over the KV store for credential
// pairs. It upholds the pair invariant: both tokens are stored or neither
// is. A half pair found on disk is treated as absent and cleaned up.
type TokenStore struct {
	kv store.KVStore
}

func NewTokenStore(kv store.KVStore) *TokenStore {
	return &TokenStore{kv: kv}
}

// Load returns the stored credential pair. A completely absent pair yields
// a zero credential and no error; a half pair is deleted and also reported
// as absent.
func (t *TokenStore) Load(ctx context.Context) (models.Credential, error) {
	access, err := t.kv.Get(ctx, keyToken)
	if err != nil && !errors.Is(err, store.ErrKVNotFound) {
		return models.Credential{}, fmt.Errorf("load access token: %w", err)
	}

	refresh, err := t.kv.Get(ctx, keyRefreshToken)
	if err != nil && !errors.Is(err, store.ErrKVNotFound) {
		return models.Credential{}, fmt.Errorf("load refresh token: %w", err)
	}

	cred := models.Credential{AccessToken: access, RefreshToken: refresh}
	if cred.IsZero() {
		return models.Credential{}, nil
	}
	if !cred.Complete() {
		// Pair invariant violated on disk: remove the stray half.
		if clearErr := t.Clear(ctx); clearErr != nil {
			return models.Credential{}, fmt.Errorf("clear incomplete credential pair: %w", clearErr)
		}
		return models.Credential{}, nil
	}

	return cred, nil
}

// Save persists both tokens. Rejects incomplete pairs so a half pair can
// never be written in the first place.
func (t *TokenStore) Save(ctx context.Context, cred models.Credential) error {
	if !cred.Complete() {
		return fmt.Errorf("save credential: %w", errors.New("incomplete token pair"))
	}

	if err := t.kv.Set(ctx, keyToken, cred.AccessToken); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := t.kv.Set(ctx, keyRefreshToken, cred.RefreshToken); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}

	return nil
}

// Clear removes both tokens. Deleting an absent key is a no-op, so Clear is
// idempotent.
func (t *TokenStore) Clear(ctx context.Context) error {
	if err := t.kv.Delete(ctx, keyToken); err != nil {
		return fmt.Errorf("delete access token: %w", err)
	}
	if err := t.kv.Delete(ctx, keyRefreshToken); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
