package tokens

import (
	"context"
	"crypto/rand"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wolfread/wolfread-go/internal/models"
	"golang.org/x/crypto/chacha20poly1305"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	key := make([]byte, chacha20poly1305.KeySize)
	_, err = rand.Read(key)
	require.NoError(t, err)

	return NewSQLiteRepository(db, key)
}

func TestTokens_SaveLoadRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	pair := &models.TokenPair{Access: "T1", Refresh: "R1"}
	require.NoError(t, repo.SaveTokens(ctx, pair))

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	require.Equal(t, pair, got)
}

func TestTokens_SaveReplacesWholesale(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, &models.TokenPair{Access: "T1", Refresh: "R1"}))
	require.NoError(t, repo.SaveTokens(ctx, &models.TokenPair{Access: "T2"}))

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	require.Equal(t, "T2", got.Access)
	require.Empty(t, got.Refresh)
}

func TestTokens_LoadAbsent(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.LoadTokens(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTokens_ClearThenLoadReturnsNil(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, &models.TokenPair{Access: "T1", Refresh: "R1"}))
	require.NoError(t, repo.ClearTokens(ctx))

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTokens_CorruptValueTreatedAsAbsent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.db.Exec(`INSERT INTO state(key, value) VALUES(?, ?)`, keyTokens, []byte("garbage"))
	require.NoError(t, err)

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTokens_SaveNilPair(t *testing.T) {
	repo := setupRepo(t)
	require.ErrorIs(t, repo.SaveTokens(context.Background(), nil), ErrNilTokenPair)
}

func TestOnboarding_ConsumeIsOneShot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// Nothing set yet.
	set, err := repo.ConsumeOnboarding(ctx)
	require.NoError(t, err)
	require.False(t, set)

	require.NoError(t, repo.SetOnboarding(ctx))

	set, err = repo.ConsumeOnboarding(ctx)
	require.NoError(t, err)
	require.True(t, set)

	// Second consume before a new set.
	set, err = repo.ConsumeOnboarding(ctx)
	require.NoError(t, err)
	require.False(t, set)
}

func TestClear_WipesTokensAndOnboarding(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, &models.TokenPair{Access: "T1", Refresh: "R1"}))
	require.NoError(t, repo.SetOnboarding(ctx))

	require.NoError(t, repo.Clear(ctx))

	got, err := repo.LoadTokens(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	set, err := repo.ConsumeOnboarding(ctx)
	require.NoError(t, err)
	require.False(t, set)
}
