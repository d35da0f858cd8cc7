package service

import (
	"context"
	"fmt"

	"megabot/config"
	"megabot/events"
	"megabot/models"
)

type accountService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      Clock
}

// NewAccountService creates a new account service
func NewAccountService(uowFactory UnitOfWorkFactory, cfg *config.Config, clock Clock) AccountService {
	return &accountService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
	}
}

// GetOrCreateAccount retrieves an account, creating it with the configured
// starting balance on first access
func (s *accountService) GetOrCreateAccount(ctx context.Context, userID, guildID int64) (*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback() // No-op if already committed

	account, created, err := uow.AccountRepository().GetOrCreate(ctx, userID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}

	if created {
		uow.EventBus().Publish(events.AccountCreatedEvent{
			UserID:          userID,
			GuildID:         guildID,
			StartingBalance: s.cfg.StartingBalance,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return account, nil
}

// GetLeaderboard returns the richest accounts of a guild
func (s *accountService) GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*models.LeaderboardEntry, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1", ErrInvalidInput)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	entries, err := uow.AccountRepository().GetLeaderboard(ctx, guildID, limit)
	if err != nil {
		return nil, storageError(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return entries, nil
}

// ListBoosts returns the user's currently active boosts
func (s *accountService) ListBoosts(ctx context.Context, userID, guildID int64) ([]*models.Boost, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	boosts, err := uow.BoostRepository().ListActive(ctx, userID, guildID, s.clock.Now())
	if err != nil {
		return nil, storageError(err)
	}

	// Commit so the opportunistic purge of expired rows sticks
	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return boosts, nil
}

// ListInventory returns the user's held items
func (s *accountService) ListInventory(ctx context.Context, userID, guildID int64) ([]*models.InventoryItem, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	items, err := uow.InventoryRepository().ListItems(ctx, userID, guildID)
	if err != nil {
		return nil, storageError(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return items, nil
}
