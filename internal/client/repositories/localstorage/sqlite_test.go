package localstorage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/contactdesk/internal/client/repositories"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := repositories.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(newTestDB(t))

	_, ok, err := repo.GetItem(ctx, "access_token")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.SetItem(ctx, "access_token", "A1"))
	v, ok, err := repo.GetItem(ctx, "access_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "A1", v)

	require.NoError(t, repo.SetItem(ctx, "access_token", "A2"))
	v, _, err = repo.GetItem(ctx, "access_token")
	require.NoError(t, err)
	require.Equal(t, "A2", v)
}

func TestSQLiteRepository_EmptyValueIsStored(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(newTestDB(t))

	require.NoError(t, repo.SetItem(ctx, "k", ""))
	v, ok, err := repo.GetItem(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, v)
}

func TestSQLiteRepository_RemoveItem(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(newTestDB(t))

	require.NoError(t, repo.SetItem(ctx, "a", "1"))
	require.NoError(t, repo.RemoveItem(ctx, "a"))
	require.NoError(t, repo.RemoveItem(ctx, "a"), "removing a missing key is a no-op")

	_, ok, err := repo.GetItem(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteRepository_KeysAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(newTestDB(t))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)

	for _, k := range []string{"refresh_token", "access_token", "auth_token"} {
		require.NoError(t, repo.SetItem(ctx, k, "v"))
	}
	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"access_token", "auth_token", "refresh_token"}, keys)

	require.NoError(t, repo.Clear(ctx))
	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestSQLiteRepository_InsideTx(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(tx).SetItem(ctx, "a", "1"))
	require.NoError(t, tx.Rollback())

	_, ok, err := NewSQLiteRepository(db).GetItem(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteRepository_ClosedDBWrapsError(t *testing.T) {
	ctx := context.Background()
	db, err := repositories.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo := NewSQLiteRepository(db)
	_, _, err = repo.GetItem(ctx, "a")
	require.ErrorContains(t, err, "failed to get local storage[a]")

	err = repo.SetItem(ctx, "a", "1")
	require.ErrorContains(t, err, "failed to set local storage[a]")
}
