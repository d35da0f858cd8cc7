package service

import (
	"context"
	"fmt"

	"megabot/config"
	"megabot/events"
	"megabot/models"
)

type transferService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	locker     *AccountLocker
}

// NewTransferService creates a new transfer service
func NewTransferService(uowFactory UnitOfWorkFactory, cfg *config.Config, locker *AccountLocker) TransferService {
	return &transferService{
		uowFactory: uowFactory,
		cfg:        cfg,
		locker:     locker,
	}
}

// Transfer moves amount from sender to recipient. Both balance mutations run
// in one transaction so a crash cannot leave money in transit.
func (s *transferService) Transfer(ctx context.Context, senderID, recipientID, guildID int64, amount int64) (*models.TransferResult, error) {
	if amount < 1 {
		return nil, fmt.Errorf("%w: amount must be at least 1", ErrInvalidInput)
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("%w: cannot transfer to yourself", ErrInvalidTarget)
	}

	unlock := s.locker.LockPair(guildID, senderID, recipientID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback() // No-op if already committed

	sender, _, err := uow.AccountRepository().GetOrCreate(ctx, senderID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}
	if sender.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	recipient, _, err := uow.AccountRepository().GetOrCreate(ctx, recipientID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}

	newSenderBalance, err := uow.AccountRepository().AdjustBalance(ctx, senderID, guildID, -amount)
	if err != nil {
		return nil, storageError(err)
	}
	newRecipientBalance, err := uow.AccountRepository().AdjustBalance(ctx, recipientID, guildID, amount)
	if err != nil {
		return nil, storageError(err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:     senderID,
		GuildID:    guildID,
		OldBalance: sender.Balance,
		NewBalance: newSenderBalance,
		Reason:     "transfer_out",
	})
	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:     recipientID,
		GuildID:    guildID,
		OldBalance: recipient.Balance,
		NewBalance: newRecipientBalance,
		Reason:     "transfer_in",
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return &models.TransferResult{
		Amount:     amount,
		NewBalance: newSenderBalance,
	}, nil
}
