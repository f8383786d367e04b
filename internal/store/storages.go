package store

import (
	"context"
	"fmt"

	"github.com/propchat/propchat-client/internal/config"
	"github.com/propchat/propchat-client/internal/logger"
)

// Storages groups all client-side storage repositories into a single value
// that can be passed around the service layer.
type Storages struct {
	// KV is the SQLite-backed durable key-value store holding credential
	// tokens, the licence key mirror, and UI preferences.
	KV KVStore

	// HistoryCache is the last-synced transcript cache.
	HistoryCache HistoryCacheRepository
}

// NewStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		KV:           NewKVRepository(db, logger),
		HistoryCache: NewHistoryCacheRepository(db, logger),
	}, nil
}
