package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/alttext/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_GetAbsent(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "theme")

	assert.ErrorIs(t, err, domain.ErrPreferenceAbsent)
}

func TestSQLiteRepository_SetAndOverwrite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "light"))
	value, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	value, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	var count int64
	require.NoError(t, repo.db.Model(&PreferenceModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteRepository_PersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "theme", "light"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		assert.ErrorContains(t, err, "after 2 retries")
	})
}
