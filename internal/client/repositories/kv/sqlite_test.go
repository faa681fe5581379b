package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := OpenDatabase(ctx, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), db
}

func TestGet_AbsentKey(t *testing.T) {
	repo, _ := setupRepo(t)

	v, ok, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "", v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "auth_token", "tok-123"))

	v, ok, err := repo.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-123", v)
}

func TestSet_Upserts(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "first"))
	require.NoError(t, repo.Set(ctx, "k", "second"))

	v, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestDelete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, repo.Delete(ctx, "k"))
}

func TestList(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Set(ctx, "b", "2"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, all)
}

func TestClear_RemovesEverything(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "auth_token", "tok"))
	require.NoError(t, repo.Set(ctx, "user_data", "{}"))
	require.NoError(t, repo.Clear(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestMigrations_Idempotent(t *testing.T) {
	_, db := setupRepo(t)
	// running migrations again must be a no-op
	require.NoError(t, RunMigrations(context.Background(), db))
}
