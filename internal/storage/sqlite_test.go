package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", "v1"))

	v, ok, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v1", v)
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, ok, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "", v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "old"))
	require.NoError(t, s.Set(ctx, "k", "new"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "new", v)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStore_List(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, "1", m["a"])
	assert.Equal(t, "2", m["b"])
}

func TestSQLiteStore_UpdateAppliesAllWrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	err := s.Update(ctx, func(ctx context.Context, st Store) error {
		if err := st.Set(ctx, "a", "1"); err != nil {
			return err
		}
		return st.Set(ctx, "b", "2")
	})
	require.NoError(t, err)

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
}

func TestSQLiteStore_UpdateRollsBackOnError(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	require.NoError(t, s.Set(ctx, "keep", "me"))

	err := s.Update(ctx, func(ctx context.Context, st Store) error {
		if err := st.Delete(ctx, "keep"); err != nil {
			return err
		}
		if err := st.Set(ctx, "new", "value"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, ok, err := s.Get(ctx, "keep")
	require.NoError(t, err)
	require.True(t, ok, "aborted update must not delete keys")
	require.Equal(t, "me", v)

	_, ok, err = s.Get(ctx, "new")
	require.NoError(t, err)
	require.False(t, ok, "aborted update must not persist writes")
}
