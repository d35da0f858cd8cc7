package repository

import (
	"context"
	"testing"

	"megabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobHistoryRepository_RecordAndGetStats(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRobHistoryRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty history reads as zero stats", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.Attempts)
		assert.Equal(t, int64(0), stats.Successes)
		assert.Equal(t, int64(0), stats.TimesRobbed)
	})

	t.Run("stats aggregate per role", func(t *testing.T) {
		// User 100 robs twice, succeeding once, and is robbed once
		require.NoError(t, repo.Record(ctx, testutil.CreateTestRobAttempt(100, 300, 200, 400, true)))
		require.NoError(t, repo.Record(ctx, testutil.CreateTestRobAttempt(100, 300, 200, 0, false)))
		require.NoError(t, repo.Record(ctx, testutil.CreateTestRobAttempt(300, 100, 200, 150, true)))

		stats, err := repo.GetStats(ctx, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Attempts)
		assert.Equal(t, int64(1), stats.Successes)
		assert.Equal(t, int64(1), stats.TimesRobbed)
	})

	t.Run("other guilds do not leak in", func(t *testing.T) {
		require.NoError(t, repo.Record(ctx, testutil.CreateTestRobAttempt(100, 300, 999, 50, true)))

		stats, err := repo.GetStats(ctx, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Attempts)
	})

	t.Run("record assigns an id", func(t *testing.T) {
		attempt := testutil.CreateTestRobAttempt(100, 300, 200, 0, false)
		require.NoError(t, repo.Record(ctx, attempt))
		assert.NotZero(t, attempt.ID)
	})
}
