package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/models"
)

type historyCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryCacheRepository(db *DB, logger *logger.Logger) HistoryCacheRepository {
	return &historyCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// Replace runs in a single transaction so a failed write can never leave a
// half-replaced transcript behind.
func (r *historyCacheRepository) Replace(ctx context.Context, msgs []models.Message) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin history cache transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := sq.Delete("history_cache").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history cache delete query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "historyCacheRepository.Replace").
			Msg("failed to clear history cache")
		return fmt.Errorf("failed to clear history cache: %w", err)
	}

	if len(msgs) > 0 {
		insert := sq.Insert("history_cache").Columns("position", "role", "content")
		for i, msg := range msgs {
			insert = insert.Values(i, string(msg.Role), msg.Content)
		}

		insertQuery, insertArgs, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("failed to build history cache insert query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "historyCacheRepository.Replace").
				Int("messages", len(msgs)).
				Msg("failed to insert history cache rows")
			return fmt.Errorf("failed to insert history cache rows: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history cache transaction: %w", err)
	}

	return nil
}

func (r *historyCacheRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("role", "content").
		From("history_cache").
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history cache select query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyCacheRepository.GetAll").
			Msg("failed to query history cache")
		return nil, fmt.Errorf("failed to query history cache: %w", err)
	}
	defer rows.Close()

	var msgs []models.Message

	for rows.Next() {
		var role, content string
		if scanErr := rows.Scan(&role, &content); scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyCacheRepository.GetAll").
				Msg("failed to scan history cache row")
			return nil, fmt.Errorf("failed to scan history cache row: %w", scanErr)
		}
		msgs = append(msgs, models.Message{Role: models.Role(role), Content: content})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "historyCacheRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating history cache rows: %w", rowsErr)
	}

	return msgs, nil
}

func (r *historyCacheRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("history_cache").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history cache delete query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyCacheRepository.Clear").
			Msg("failed to clear history cache")
		return fmt.Errorf("failed to clear history cache: %w", err)
	}

	return nil
}
