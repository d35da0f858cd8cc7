package repository

import (
	"context"
	"testing"
	"time"

	"megabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetOrCreate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates on first access", func(t *testing.T) {
		account, created, err := repo.GetOrCreate(ctx, 100, 200, 1000)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(100), account.UserID)
		assert.Equal(t, int64(200), account.GuildID)
		assert.Equal(t, int64(1000), account.Balance)
		assert.Nil(t, account.LastDaily)
	})

	t.Run("returns existing on second access", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, 100, 200, 500)
		require.NoError(t, err)

		account, created, err := repo.GetOrCreate(ctx, 100, 200, 1000)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(1500), account.Balance)
	})

	t.Run("same user in another guild is a separate account", func(t *testing.T) {
		account, created, err := repo.GetOrCreate(ctx, 100, 999, 1000)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1000), account.Balance)
	})
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	_, _, err := repo.GetOrCreate(ctx, 100, 200, 1000)
	require.NoError(t, err)

	t.Run("credit", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, 100, 200, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(1250), balance)
	})

	t.Run("debit", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, 100, 200, -1000)
		require.NoError(t, err)
		assert.Equal(t, int64(250), balance)
	})

	t.Run("debit past zero clamps to zero", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, 100, 200, -99999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})
}

func TestAccountRepository_Timestamps(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	_, _, err := repo.GetOrCreate(ctx, 100, 200, 1000)
	require.NoError(t, err)

	claimed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetLastDaily(ctx, 100, 200, claimed))
	require.NoError(t, repo.SetLastWork(ctx, 100, 200, claimed.Add(time.Hour)))
	require.NoError(t, repo.SetLastRob(ctx, 100, 200, claimed.Add(2*time.Hour)))

	account, _, err := repo.GetOrCreate(ctx, 100, 200, 1000)
	require.NoError(t, err)
	require.NotNil(t, account.LastDaily)
	require.NotNil(t, account.LastWork)
	require.NotNil(t, account.LastRob)
	assert.True(t, account.LastDaily.Equal(claimed))
	assert.True(t, account.LastWork.Equal(claimed.Add(time.Hour)))
	assert.True(t, account.LastRob.Equal(claimed.Add(2*time.Hour)))
}

func TestAccountRepository_GetLeaderboard(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	for i, balance := range []int64{500, 3000, 1500} {
		userID := int64(100 + i)
		_, _, err := repo.GetOrCreate(ctx, userID, 200, balance)
		require.NoError(t, err)
	}
	// Another guild's account must not leak into the ranking
	_, _, err := repo.GetOrCreate(ctx, 999, 300, 99999)
	require.NoError(t, err)

	entries, err := repo.GetLeaderboard(ctx, 200, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(101), entries[0].UserID)
	assert.Equal(t, int64(3000), entries[0].Balance)
	assert.Equal(t, int64(102), entries[1].UserID)
	assert.Equal(t, int64(100), entries[2].UserID)

	t.Run("limit caps the result", func(t *testing.T) {
		entries, err := repo.GetLeaderboard(ctx, 200, 2)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}
