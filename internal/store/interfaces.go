// SPDX-License-Identifier: Apache-2.0

// Package store provides the durable local persistence layer of the propchat
// client: a named key-value store for credentials and preferences, and a
// read-only cache of the last synced conversation transcript. Both are backed
// by a single SQLite database file that survives restarts.
package store

import (
	"context"

	"github.com/propchat/propchat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVStore is the durable named-value store. Values are opaque strings; the
// store performs no validation and no concurrency control beyond statement
// atomicity — callers writing the same key must serialise themselves.
type KVStore interface {
	// Get returns the value stored under name, or [ErrKVNotFound] if the
	// name has never been set or has been deleted.
	Get(ctx context.Context, name string) (string, error)

	// Set stores value under name, overwriting any previous value.
	Set(ctx context.Context, name, value string) error

	// Delete removes name from the store. Deleting an absent name is not an
	// error.
	Delete(ctx context.Context, name string) error
}

// HistoryCacheRepository holds the last transcript fetched from the backend
// so the UI can show the previous conversation before the next network
// round-trip completes. The cache is replaced wholesale, never merged.
type HistoryCacheRepository interface {
	// Replace drops the cached transcript and stores msgs in order.
	Replace(ctx context.Context, msgs []models.Message) error

	// GetAll returns the cached transcript in its original order.
	GetAll(ctx context.Context) ([]models.Message, error)

	// Clear empties the cache.
	Clear(ctx context.Context) error
}
