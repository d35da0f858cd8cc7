package service

import (
	"context"
	"testing"

	"megabot/events"
	"megabot/models"

	"github.com/stretchr/testify/assert"
)

func setupTransferMocks() (*MockUnitOfWork, *MockUnitOfWorkFactory, *MockAccountRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockUoW.SetRepositories(mockAccountRepo, new(MockBoostRepository), new(MockInventoryRepository), new(MockRobHistoryRepository))
	return mockUoW, mockFactory, mockAccountRepo
}

func TestTransferService_Transfer_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo := setupTransferMocks()
	service := NewTransferService(mockFactory, testConfig(), NewAccountLocker())

	sender := &models.Account{UserID: 123, GuildID: 456, Balance: 1000}
	recipient := &models.Account{UserID: 789, GuildID: 456, Balance: 1000}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(sender, false, nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(789), int64(456), int64(1000)).Return(recipient, false, nil)
	mockAccountRepo.On("AdjustBalance", ctx, int64(123), int64(456), int64(-250)).Return(int64(750), nil)
	mockAccountRepo.On("AdjustBalance", ctx, int64(789), int64(456), int64(250)).Return(int64(1250), nil)

	result, err := service.Transfer(ctx, 123, 789, 456, 250)

	assert.NoError(t, err)
	assert.Equal(t, int64(250), result.Amount)
	assert.Equal(t, int64(750), result.NewBalance)

	published := mockUoW.PublishedEvents()
	assert.Len(t, published, 2)
	out := published[0].(events.BalanceChangeEvent)
	in := published[1].(events.BalanceChangeEvent)
	assert.Equal(t, "transfer_out", out.Reason)
	assert.Equal(t, int64(750), out.NewBalance)
	assert.Equal(t, "transfer_in", in.Reason)
	assert.Equal(t, int64(1250), in.NewBalance)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAccountRepo.AssertExpectations(t)
}

func TestTransferService_Transfer_SelfTransferRejected(t *testing.T) {
	ctx := context.Background()

	_, mockFactory, _ := setupTransferMocks()
	service := NewTransferService(mockFactory, testConfig(), NewAccountLocker())

	result, err := service.Transfer(ctx, 123, 123, 456, 250)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	// Rejected before any storage access
	mockFactory.AssertNotCalled(t, "Create")
}

func TestTransferService_Transfer_AmountBelowOne(t *testing.T) {
	ctx := context.Background()

	_, mockFactory, _ := setupTransferMocks()
	service := NewTransferService(mockFactory, testConfig(), NewAccountLocker())

	result, err := service.Transfer(ctx, 123, 789, 456, 0)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockFactory.AssertNotCalled(t, "Create")
}

func TestTransferService_Transfer_InsufficientFunds(t *testing.T) {
	ctx := context.Background()

	mockUoW, mockFactory, mockAccountRepo := setupTransferMocks()
	service := NewTransferService(mockFactory, testConfig(), NewAccountLocker())

	sender := &models.Account{UserID: 123, GuildID: 456, Balance: 100}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockAccountRepo.On("GetOrCreate", ctx, int64(123), int64(456), int64(1000)).Return(sender, false, nil)

	result, err := service.Transfer(ctx, 123, 789, 456, 500)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	mockAccountRepo.AssertExpectations(t)
}
