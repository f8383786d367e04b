package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/models"
)

var (
	cacheDeleteSQL = regexp.QuoteMeta("DELETE FROM history_cache")
	cacheSelectSQL = regexp.QuoteMeta("SELECT role, content FROM history_cache ORDER BY position ASC")
)

func TestHistoryCacheRepository_Replace(t *testing.T) {
	msgs := []models.Message{
		{Content: "hi", Role: models.RoleUser},
		{Content: "hello", Role: models.RoleAssistant},
	}
	insertSQL := regexp.QuoteMeta("INSERT INTO history_cache (position,role,content) VALUES (?,?,?),(?,?,?)")

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(cacheDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(insertSQL).
			WithArgs(0, "user", "hi", 1, "assistant", "hello").
			WillReturnResult(sqlmock.NewResult(2, 2))
		mock.ExpectCommit()

		repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
		err := repo.Replace(testContext(), msgs)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty transcript clears without insert", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(cacheDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
		err := repo.Replace(testContext(), nil)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(cacheDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertSQL).WillReturnError(errors.New("database is locked"))
		mock.ExpectRollback()

		repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
		err := repo.Replace(testContext(), msgs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is locked")
	})
}

func TestHistoryCacheRepository_GetAll(t *testing.T) {
	t.Run("ordered transcript", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows([]string{"role", "content"}).
			AddRow("user", "2BR apartment?").
			AddRow("assistant", "Here are some options")
		mock.ExpectQuery(cacheSelectSQL).WillReturnRows(rows)

		repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
		msgs, err := repo.GetAll(testContext())

		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, models.Message{Content: "2BR apartment?", Role: models.RoleUser}, msgs[0])
		assert.Equal(t, models.Message{Content: "Here are some options", Role: models.RoleAssistant}, msgs[1])
	})

	t.Run("empty cache", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(cacheSelectSQL).WillReturnRows(sqlmock.NewRows([]string{"role", "content"}))

		repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
		msgs, err := repo.GetAll(testContext())

		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(cacheSelectSQL).WillReturnError(errors.New("disk I/O error"))

		repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetAll(testContext())

		require.Error(t, err)
	})
}

func TestHistoryCacheRepository_Clear(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(cacheDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewHistoryCacheRepository(newDBFromSQL(db), logger.Nop())
	err := repo.Clear(testContext())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
