package service

import (
	"context"
	"testing"
	"time"

	"megabot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupShopMocks() (*MockUnitOfWork, *MockUnitOfWorkFactory, *MockAccountRepository, *MockBoostRepository, *MockInventoryRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockBoostRepo := new(MockBoostRepository)
	mockInventoryRepo := new(MockInventoryRepository)
	mockUoW.SetRepositories(mockAccountRepo, mockBoostRepo, mockInventoryRepo, new(MockRobHistoryRepository))
	return mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo
}

func TestShopService_Catalog(t *testing.T) {
	service := NewShopService(new(MockUnitOfWorkFactory), testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	items := service.Catalog()

	assert.Len(t, items, 11)
	for _, item := range items {
		assert.Equal(t, item.Price/2, item.SellPrice)
	}
}

func TestShopService_Buy_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, _, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockAccountRepo.On("AdjustBalance", ctx, int64(123), int64(456), int64(-250)).Return(int64(750), nil)
	mockInventoryRepo.On("AddItem", ctx, int64(123), int64(456), models.ItemPadlock, models.ItemTypeSecurity, int64(1)).Return(nil)

	result, err := service.Buy(ctx, 123, 456, models.ItemPadlock)

	assert.NoError(t, err)
	assert.Equal(t, models.ItemPadlock, result.Item)
	assert.Equal(t, int64(250), result.Price)
	assert.Equal(t, int64(750), result.NewBalance)
	assert.Len(t, mockUoW.PublishedEvents(), 1)

	mockAccountRepo.AssertExpectations(t)
	mockInventoryRepo.AssertExpectations(t)
}

func TestShopService_Buy_UnknownItem(t *testing.T) {
	ctx := context.Background()

	_, mockFactory, _, _, _ := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	result, err := service.Buy(ctx, 123, 456, models.ItemID("moon_rock"))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotFound)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestShopService_Buy_InsufficientFunds(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, _, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 100}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)

	result, err := service.Buy(ctx, 123, 456, models.ItemPadlock)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	mockInventoryRepo.AssertNotCalled(t, "AddItem")
	mockAccountRepo.AssertExpectations(t)
}

func TestShopService_UseItem_GrantsBoost(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}
	expiry := testNow.Add(time.Hour)
	granted := &models.Boost{
		ID:      1,
		UserID:  123,
		GuildID: 456,
		Effect:  models.EffectGamblingBoost,
		Expiry:  &expiry,
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockBoostRepo.On("ListActive", ctx, int64(123), int64(456), testNow).Return([]*models.Boost{}, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemLuckyCharm, int64(1)).Return(true, nil)
	mockBoostRepo.On("Grant", ctx, int64(123), int64(456), models.EffectGamblingBoost, mock.MatchedBy(func(e *time.Time) bool {
		return e != nil && e.Equal(expiry)
	})).Return(granted, nil)

	result, err := service.UseItem(ctx, 123, 456, models.ItemLuckyCharm)

	assert.NoError(t, err)
	assert.Equal(t, models.EffectGamblingBoost, result.Effect)
	assert.NotNil(t, result.Expiry)
	assert.Equal(t, expiry, *result.Expiry)
	assert.Equal(t, int64(0), result.Payout)
	assert.Equal(t, int64(1000), result.NewBalance)

	mockBoostRepo.AssertExpectations(t)
	mockInventoryRepo.AssertExpectations(t)
}

func TestShopService_UseItem_PermanentBoostHasNoExpiry(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}
	granted := &models.Boost{ID: 1, UserID: 123, GuildID: 456, Effect: models.EffectDailyBoost}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockBoostRepo.On("ListActive", ctx, int64(123), int64(456), testNow).Return([]*models.Boost{}, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemBankUpgrade, int64(1)).Return(true, nil)
	mockBoostRepo.On("Grant", ctx, int64(123), int64(456), models.EffectDailyBoost, (*time.Time)(nil)).Return(granted, nil)

	result, err := service.UseItem(ctx, 123, 456, models.ItemBankUpgrade)

	assert.NoError(t, err)
	assert.Nil(t, result.Expiry)

	mockBoostRepo.AssertExpectations(t)
}

func TestShopService_UseItem_AlreadyActiveLeavesInventoryUntouched(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}
	active := []*models.Boost{{Effect: models.EffectGamblingBoost}}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockBoostRepo.On("ListActive", ctx, int64(123), int64(456), testNow).Return(active, nil)

	result, err := service.UseItem(ctx, 123, 456, models.ItemLuckyCharm)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAlreadyActive)

	mockInventoryRepo.AssertNotCalled(t, "Consume")
	mockBoostRepo.AssertExpectations(t)
}

func TestShopService_UseItem_NotUsable(t *testing.T) {
	ctx := context.Background()

	_, mockFactory, _, _, _ := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	result, err := service.UseItem(ctx, 123, 456, models.ItemPadlock)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestShopService_UseItem_NoneHeld(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockBoostRepo.On("ListActive", ctx, int64(123), int64(456), testNow).Return([]*models.Boost{}, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemLuckyCharm, int64(1)).Return(false, nil)

	result, err := service.UseItem(ctx, 123, 456, models.ItemLuckyCharm)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	mockInventoryRepo.AssertExpectations(t)
}

func TestShopService_UseItem_StockTipJackpot(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo := setupShopMocks()
	// 0.92 lands in the jackpot bucket; the percent draw lands on 500%
	rng := &scriptedRand{floats: []float64{0.92}, int64s: []int64{100}}
	service := NewShopService(mockFactory, testConfig(), testClock(), rng, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}
	expiry := testNow.Add(24 * time.Hour)
	granted := &models.Boost{
		ID:      1,
		UserID:  123,
		GuildID: 456,
		Effect:  models.EffectStockCooldown,
		Expiry:  &expiry,
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockBoostRepo.On("ListActive", ctx, int64(123), int64(456), testNow).Return([]*models.Boost{}, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemStockMarketTip, int64(1)).Return(true, nil)
	mockAccountRepo.On("AdjustBalance", ctx, int64(123), int64(456), int64(2500)).Return(int64(3500), nil)
	mockAccountRepo.On("AddEarned", ctx, int64(123), int64(456), int64(2500)).Return(nil)
	mockBoostRepo.On("Grant", ctx, int64(123), int64(456), models.EffectStockCooldown, mock.MatchedBy(func(e *time.Time) bool {
		return e != nil && e.Equal(expiry)
	})).Return(granted, nil)

	result, err := service.UseItem(ctx, 123, 456, models.ItemStockMarketTip)

	assert.NoError(t, err)
	assert.Equal(t, int64(2500), result.Payout)
	assert.Equal(t, int64(3500), result.NewBalance)

	mockAccountRepo.AssertExpectations(t)
	mockBoostRepo.AssertExpectations(t)
}

func TestShopService_UseItem_StockTipTotalLoss(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, mockBoostRepo, mockInventoryRepo := setupShopMocks()
	// 0.1 lands in the total-loss bucket: the full tip price is lost
	rng := &scriptedRand{floats: []float64{0.1}}
	service := NewShopService(mockFactory, testConfig(), testClock(), rng, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}
	expiry := testNow.Add(24 * time.Hour)
	granted := &models.Boost{ID: 1, Effect: models.EffectStockCooldown, Expiry: &expiry}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockBoostRepo.On("ListActive", ctx, int64(123), int64(456), testNow).Return([]*models.Boost{}, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemStockMarketTip, int64(1)).Return(true, nil)
	mockAccountRepo.On("AdjustBalance", ctx, int64(123), int64(456), int64(-500)).Return(int64(500), nil)
	mockBoostRepo.On("Grant", ctx, int64(123), int64(456), models.EffectStockCooldown, mock.MatchedBy(func(e *time.Time) bool {
		return e != nil
	})).Return(granted, nil)

	result, err := service.UseItem(ctx, 123, 456, models.ItemStockMarketTip)

	assert.NoError(t, err)
	assert.Equal(t, int64(-500), result.Payout)
	assert.Equal(t, int64(500), result.NewBalance)

	mockAccountRepo.AssertNotCalled(t, "AddEarned")
	mockAccountRepo.AssertExpectations(t)
}

func TestShopService_SellItem_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, _, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 750}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemPadlock, int64(1)).Return(true, nil)
	mockAccountRepo.On("AdjustBalance", ctx, int64(123), int64(456), int64(125)).Return(int64(875), nil)

	result, err := service.SellItem(ctx, 123, 456, models.ItemPadlock, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(125), result.Proceeds)
	assert.Equal(t, int64(875), result.NewBalance)

	mockAccountRepo.AssertExpectations(t)
	mockInventoryRepo.AssertExpectations(t)
}

func TestShopService_SellItem_MoreThanHeld(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo, _, mockInventoryRepo := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	account := &models.Account{UserID: 123, GuildID: 456, Balance: 750}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(account, false, nil)
	mockInventoryRepo.On("Consume", ctx, int64(123), int64(456), models.ItemPadlock, int64(5)).Return(false, nil)

	result, err := service.SellItem(ctx, 123, 456, models.ItemPadlock, 5)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInsufficientInventory)

	mockAccountRepo.AssertNotCalled(t, "AdjustBalance")
	mockInventoryRepo.AssertExpectations(t)
}

func TestShopService_SellItem_InvalidQuantity(t *testing.T) {
	ctx := context.Background()

	_, mockFactory, _, _, _ := setupShopMocks()
	service := NewShopService(mockFactory, testConfig(), testClock(), &scriptedRand{}, NewAccountLocker())

	result, err := service.SellItem(ctx, 123, 456, models.ItemPadlock, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestResolveItemName(t *testing.T) {
	id, ok := ResolveItemName("Lucky Charm")
	assert.True(t, ok)
	assert.Equal(t, models.ItemLuckyCharm, id)

	id, ok = ResolveItemName("  guard_dog ")
	assert.True(t, ok)
	assert.Equal(t, models.ItemGuardDog, id)

	_, ok = ResolveItemName("moon rock")
	assert.False(t, ok)
}
