package repository

import (
	"context"
	"testing"

	"megabot/models"
	"megabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository_AddItemAndGetQuantity(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewInventoryRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent item reads as zero", func(t *testing.T) {
		qty, err := repo.GetQuantity(ctx, 100, 200, models.ItemPadlock)
		require.NoError(t, err)
		assert.Equal(t, int64(0), qty)
	})

	t.Run("add creates the stack", func(t *testing.T) {
		err := repo.AddItem(ctx, 100, 200, models.ItemPadlock, models.ItemTypeSecurity, 1)
		require.NoError(t, err)

		qty, err := repo.GetQuantity(ctx, 100, 200, models.ItemPadlock)
		require.NoError(t, err)
		assert.Equal(t, int64(1), qty)
	})

	t.Run("add stacks onto the existing row", func(t *testing.T) {
		err := repo.AddItem(ctx, 100, 200, models.ItemPadlock, models.ItemTypeSecurity, 2)
		require.NoError(t, err)

		qty, err := repo.GetQuantity(ctx, 100, 200, models.ItemPadlock)
		require.NoError(t, err)
		assert.Equal(t, int64(3), qty)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		err := repo.AddItem(ctx, 100, 200, models.ItemPadlock, models.ItemTypeSecurity, 0)
		assert.Error(t, err)
	})
}

func TestInventoryRepository_Consume(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewInventoryRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, 100, 200, models.ItemGuardDog, models.ItemTypeSecurity, 2))

	t.Run("consume within holdings", func(t *testing.T) {
		ok, err := repo.Consume(ctx, 100, 200, models.ItemGuardDog, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		qty, err := repo.GetQuantity(ctx, 100, 200, models.ItemGuardDog)
		require.NoError(t, err)
		assert.Equal(t, int64(1), qty)
	})

	t.Run("consume more than held fails atomically", func(t *testing.T) {
		ok, err := repo.Consume(ctx, 100, 200, models.ItemGuardDog, 5)
		require.NoError(t, err)
		assert.False(t, ok)

		qty, err := repo.GetQuantity(ctx, 100, 200, models.ItemGuardDog)
		require.NoError(t, err)
		assert.Equal(t, int64(1), qty)
	})

	t.Run("consume absent item fails", func(t *testing.T) {
		ok, err := repo.Consume(ctx, 100, 200, models.ItemLockpick, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestInventoryRepository_ListItems(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewInventoryRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, 100, 200, models.ItemPadlock, models.ItemTypeSecurity, 2))
	require.NoError(t, repo.AddItem(ctx, 100, 200, models.ItemLockpick, models.ItemTypeTool, 1))

	// A fully consumed stack drops out of the listing
	require.NoError(t, repo.AddItem(ctx, 100, 200, models.ItemGuardDog, models.ItemTypeSecurity, 1))
	ok, err := repo.Consume(ctx, 100, 200, models.ItemGuardDog, 1)
	require.NoError(t, err)
	require.True(t, ok)

	items, err := repo.ListItems(ctx, 100, 200)
	require.NoError(t, err)
	require.Len(t, items, 2)

	held := map[models.ItemID]int64{}
	for _, item := range items {
		held[item.Item] = item.Quantity
	}
	assert.Equal(t, int64(2), held[models.ItemPadlock])
	assert.Equal(t, int64(1), held[models.ItemLockpick])
}
