package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/propchat/propchat-client/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

func NewKVRepository(db *DB, logger *logger.Logger) KVStore {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build kv get query: %w", err)
	}

	var value string
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return "", ErrKVNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "kvRepository.Get").
			Str("name", name).
			Msg("failed to query kv entry")
		return "", fmt.Errorf("failed to query kv entry (name=%s): %w", name, scanErr)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("kv").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build kv set query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("name", name).
			Msg("failed to execute upsert for kv entry")
		return fmt.Errorf("failed to save kv entry (name=%s): %w", name, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build kv delete query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Delete").
			Str("name", name).
			Msg("failed to execute delete for kv entry")
		return fmt.Errorf("failed to delete kv entry (name=%s): %w", name, err)
	}

	return nil
}
