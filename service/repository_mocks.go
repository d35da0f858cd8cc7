package service

import (
	"context"
	"time"

	"megabot/events"
	"megabot/models"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetOrCreate(ctx context.Context, userID, guildID int64, startingBalance int64) (*models.Account, bool, error) {
	args := m.Called(ctx, userID, guildID, startingBalance)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Account), args.Bool(1), args.Error(2)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, userID, guildID int64, delta int64) (int64, error) {
	args := m.Called(ctx, userID, guildID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) AddEarned(ctx context.Context, userID, guildID int64, amount int64) error {
	args := m.Called(ctx, userID, guildID, amount)
	return args.Error(0)
}

func (m *MockAccountRepository) SetLastDaily(ctx context.Context, userID, guildID int64, t time.Time) error {
	args := m.Called(ctx, userID, guildID, t)
	return args.Error(0)
}

func (m *MockAccountRepository) SetLastWork(ctx context.Context, userID, guildID int64, t time.Time) error {
	args := m.Called(ctx, userID, guildID, t)
	return args.Error(0)
}

func (m *MockAccountRepository) SetLastRob(ctx context.Context, userID, guildID int64, t time.Time) error {
	args := m.Called(ctx, userID, guildID, t)
	return args.Error(0)
}

func (m *MockAccountRepository) GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

// MockBoostRepository is a mock implementation of BoostRepository
type MockBoostRepository struct {
	mock.Mock
}

func (m *MockBoostRepository) Grant(ctx context.Context, userID, guildID int64, effect models.EffectKind, expiry *time.Time) (*models.Boost, error) {
	args := m.Called(ctx, userID, guildID, effect, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Boost), args.Error(1)
}

func (m *MockBoostRepository) ListActive(ctx context.Context, userID, guildID int64, now time.Time) ([]*models.Boost, error) {
	args := m.Called(ctx, userID, guildID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Boost), args.Error(1)
}

func (m *MockBoostRepository) RemoveExpired(ctx context.Context, now time.Time) error {
	args := m.Called(ctx, now)
	return args.Error(0)
}

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) AddItem(ctx context.Context, userID, guildID int64, item models.ItemID, itemType models.ItemType, quantity int64) error {
	args := m.Called(ctx, userID, guildID, item, itemType, quantity)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetQuantity(ctx context.Context, userID, guildID int64, item models.ItemID) (int64, error) {
	args := m.Called(ctx, userID, guildID, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) Consume(ctx context.Context, userID, guildID int64, item models.ItemID, quantity int64) (bool, error) {
	args := m.Called(ctx, userID, guildID, item, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, userID, guildID int64) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

// MockRobHistoryRepository is a mock implementation of RobHistoryRepository
type MockRobHistoryRepository struct {
	mock.Mock
}

func (m *MockRobHistoryRepository) Record(ctx context.Context, attempt *models.RobAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockRobHistoryRepository) GetStats(ctx context.Context, userID, guildID int64) (*models.RobStats, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RobStats), args.Error(1)
}

// MockEventPublisher collects published events for inspection
type MockEventPublisher struct {
	Events []events.Event
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Events = append(m.Events, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	accountRepo    AccountRepository
	boostRepo      BoostRepository
	inventoryRepo  InventoryRepository
	robHistoryRepo RobHistoryRepository
	eventBus       *MockEventPublisher
}

// SetRepositories wires the mock repositories returned by the getters
func (m *MockUnitOfWork) SetRepositories(accountRepo AccountRepository, boostRepo BoostRepository, inventoryRepo InventoryRepository, robHistoryRepo RobHistoryRepository) {
	m.accountRepo = accountRepo
	m.boostRepo = boostRepo
	m.inventoryRepo = inventoryRepo
	m.robHistoryRepo = robHistoryRepo
	m.eventBus = &MockEventPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) AccountRepository() AccountRepository {
	return m.accountRepo
}

func (m *MockUnitOfWork) BoostRepository() BoostRepository {
	return m.boostRepo
}

func (m *MockUnitOfWork) InventoryRepository() InventoryRepository {
	return m.inventoryRepo
}

func (m *MockUnitOfWork) RobHistoryRepository() RobHistoryRepository {
	return m.robHistoryRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// PublishedEvents returns the events published through this unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.eventBus.Events
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
