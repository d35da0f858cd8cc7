package service

import (
	"context"
	"time"

	"megabot/events"
	"megabot/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// GetOrCreate retrieves an account, creating it with the starting
	// balance on first access. The bool reports whether a row was created.
	GetOrCreate(ctx context.Context, userID, guildID int64, startingBalance int64) (*models.Account, bool, error)

	// AdjustBalance applies delta to the balance, clamping the result at
	// zero, and returns the new balance
	AdjustBalance(ctx context.Context, userID, guildID int64, delta int64) (int64, error)

	// AddEarned bumps the total_earned statistic
	AddEarned(ctx context.Context, userID, guildID int64, amount int64) error

	// SetLastDaily records the time of the latest daily claim
	SetLastDaily(ctx context.Context, userID, guildID int64, t time.Time) error

	// SetLastWork records the time of the latest work shift
	SetLastWork(ctx context.Context, userID, guildID int64, t time.Time) error

	// SetLastRob records the time of the latest resolved rob attempt
	SetLastRob(ctx context.Context, userID, guildID int64, t time.Time) error

	// GetLeaderboard returns up to limit accounts ordered by balance descending
	GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*models.LeaderboardEntry, error)
}

// BoostRepository defines the interface for boost data access.
// Uniqueness of active boosts per effect kind is enforced by callers, not here.
type BoostRepository interface {
	// Grant inserts a new boost row; a nil expiry means permanent
	Grant(ctx context.Context, userID, guildID int64, effect models.EffectKind, expiry *time.Time) (*models.Boost, error)

	// ListActive returns all boosts active at the given instant and
	// opportunistically purges rows whose expiry has passed
	ListActive(ctx context.Context, userID, guildID int64, now time.Time) ([]*models.Boost, error)

	// RemoveExpired purges all boost rows whose expiry has passed
	RemoveExpired(ctx context.Context, now time.Time) error
}

// InventoryRepository defines the interface for inventory data access
type InventoryRepository interface {
	// AddItem increments an existing stack or creates a new one
	AddItem(ctx context.Context, userID, guildID int64, item models.ItemID, itemType models.ItemType, quantity int64) error

	// GetQuantity returns the held quantity, 0 if absent
	GetQuantity(ctx context.Context, userID, guildID int64, item models.ItemID) (int64, error)

	// Consume decrements the stack by quantity. Returns false without
	// mutating when the held quantity is insufficient.
	Consume(ctx context.Context, userID, guildID int64, item models.ItemID, quantity int64) (bool, error)

	// ListItems returns all holdings with quantity > 0
	ListItems(ctx context.Context, userID, guildID int64) ([]*models.InventoryItem, error)
}

// RobHistoryRepository defines the interface for the robbery audit log
type RobHistoryRepository interface {
	// Record appends a resolved rob attempt
	Record(ctx context.Context, attempt *models.RobAttempt) error

	// GetStats returns robbery statistics for a user in a guild
	GetStats(ctx context.Context, userID, guildID int64) (*models.RobStats, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	AccountRepository() AccountRepository
	BoostRepository() BoostRepository
	InventoryRepository() InventoryRepository
	RobHistoryRepository() RobHistoryRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// AccountService defines the interface for account operations
type AccountService interface {
	// GetOrCreateAccount retrieves an account, creating it with the
	// configured starting balance on first access
	GetOrCreateAccount(ctx context.Context, userID, guildID int64) (*models.Account, error)

	// GetLeaderboard returns the richest accounts of a guild
	GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*models.LeaderboardEntry, error)

	// ListBoosts returns the user's currently active boosts
	ListBoosts(ctx context.Context, userID, guildID int64) ([]*models.Boost, error)

	// ListInventory returns the user's held items
	ListInventory(ctx context.Context, userID, guildID int64) ([]*models.InventoryItem, error)
}

// RewardsService defines the interface for the recurring reward claims
type RewardsService interface {
	// Daily claims the daily reward, once per 24 hours
	Daily(ctx context.Context, userID, guildID int64) (*models.DailyResult, error)

	// Work earns a random reward, once per hour unless a no_cooldown
	// boost is active
	Work(ctx context.Context, userID, guildID int64) (*models.WorkResult, error)
}

// GamblingService defines the interface for casino games
type GamblingService interface {
	// PlaySlots pulls the slot machine for the given bet
	PlaySlots(ctx context.Context, userID, guildID int64, bet int64) (*models.SlotsResult, error)

	// PlayBlackjack plays one round of blackjack for the given bet
	PlayBlackjack(ctx context.Context, userID, guildID int64, bet int64) (*models.BlackjackResult, error)
}

// TransferService defines the interface for player-to-player transfers
type TransferService interface {
	// Transfer moves amount from sender to recipient atomically
	Transfer(ctx context.Context, senderID, recipientID, guildID int64, amount int64) (*models.TransferResult, error)
}

// RobService defines the interface for the rob/heist mechanic
type RobService interface {
	// Rob attempts to steal from the victim
	Rob(ctx context.Context, robberID, victimID, guildID int64) (*models.RobResult, error)

	// GetRobStats returns robbery statistics for a user
	GetRobStats(ctx context.Context, userID, guildID int64) (*models.RobStats, error)
}

// ShopService defines the interface for the item shop
type ShopService interface {
	// Catalog returns all purchasable items
	Catalog() []*models.ShopItem

	// Buy purchases one unit of an item into the inventory
	Buy(ctx context.Context, userID, guildID int64, item models.ItemID) (*models.PurchaseResult, error)

	// UseItem consumes one unit and applies its effect
	UseItem(ctx context.Context, userID, guildID int64, item models.ItemID) (*models.UseItemResult, error)

	// SellItem converts held items back into currency at the sell price
	SellItem(ctx context.Context, userID, guildID int64, item models.ItemID, quantity int64) (*models.SellResult, error)
}
