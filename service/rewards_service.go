package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"megabot/config"
	"megabot/events"
	"megabot/models"
)

type rewardsService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      Clock
	rng        Rand
	locker     *AccountLocker
}

// NewRewardsService creates a new rewards service
func NewRewardsService(uowFactory UnitOfWorkFactory, cfg *config.Config, clock Clock, rng Rand, locker *AccountLocker) RewardsService {
	return &rewardsService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
		rng:        rng,
		locker:     locker,
	}
}

// Daily claims the daily reward. Re-arms 24 hours after the last claim.
// all_boost triples the reward; otherwise daily_boost grants half again.
func (s *rewardsService) Daily(ctx context.Context, userID, guildID int64) (*models.DailyResult, error) {
	unlock := s.locker.Lock(userID, guildID)
	defer unlock()

	now := s.clock.Now()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback() // No-op if already committed

	account, _, err := uow.AccountRepository().GetOrCreate(ctx, userID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}

	if account.LastDaily != nil {
		elapsed := now.Sub(*account.LastDaily)
		if elapsed < s.cfg.DailyCooldown {
			return nil, &CooldownError{Remaining: s.cfg.DailyCooldown - elapsed}
		}
	}

	boosts, err := uow.BoostRepository().ListActive(ctx, userID, guildID, now)
	if err != nil {
		return nil, storageError(err)
	}

	// all_boost wins over daily_boost
	multiplier := 1.0
	switch {
	case hasEffect(boosts, models.EffectAllBoost):
		multiplier = 3.0
	case hasEffect(boosts, models.EffectDailyBoost):
		multiplier = 1.5
	}
	reward := int64(float64(s.cfg.DailyReward) * multiplier)

	newBalance, err := uow.AccountRepository().AdjustBalance(ctx, userID, guildID, reward)
	if err != nil {
		return nil, storageError(err)
	}
	if err := uow.AccountRepository().AddEarned(ctx, userID, guildID, reward); err != nil {
		return nil, storageError(err)
	}
	if err := uow.AccountRepository().SetLastDaily(ctx, userID, guildID, now); err != nil {
		return nil, storageError(err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:     userID,
		GuildID:    guildID,
		OldBalance: account.Balance,
		NewBalance: newBalance,
		Reason:     "daily",
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"guildID": guildID,
		"reward":  reward,
	}).Debug("Daily reward claimed")

	return &models.DailyResult{
		Reward:     reward,
		Multiplier: multiplier,
		NewBalance: newBalance,
	}, nil
}

// Work earns a random reward, once per hour. An active no_cooldown boost
// bypasses the cooldown entirely. all_boost triples the reward; otherwise
// work_boost doubles it.
func (s *rewardsService) Work(ctx context.Context, userID, guildID int64) (*models.WorkResult, error) {
	unlock := s.locker.Lock(userID, guildID)
	defer unlock()

	now := s.clock.Now()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	account, _, err := uow.AccountRepository().GetOrCreate(ctx, userID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}

	boosts, err := uow.BoostRepository().ListActive(ctx, userID, guildID, now)
	if err != nil {
		return nil, storageError(err)
	}

	if !hasEffect(boosts, models.EffectNoCooldown) && account.LastWork != nil {
		elapsed := now.Sub(*account.LastWork)
		if elapsed < s.cfg.WorkCooldown {
			return nil, &CooldownError{Remaining: s.cfg.WorkCooldown - elapsed}
		}
	}

	multiplier := 1.0
	switch {
	case hasEffect(boosts, models.EffectAllBoost):
		multiplier = 3.0
	case hasEffect(boosts, models.EffectWorkBoost):
		multiplier = 2.0
	}
	earned := int64(float64(randRange(s.rng, s.cfg.WorkRewardMin, s.cfg.WorkRewardMax)) * multiplier)

	newBalance, err := uow.AccountRepository().AdjustBalance(ctx, userID, guildID, earned)
	if err != nil {
		return nil, storageError(err)
	}
	if err := uow.AccountRepository().AddEarned(ctx, userID, guildID, earned); err != nil {
		return nil, storageError(err)
	}
	if err := uow.AccountRepository().SetLastWork(ctx, userID, guildID, now); err != nil {
		return nil, storageError(err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:     userID,
		GuildID:    guildID,
		OldBalance: account.Balance,
		NewBalance: newBalance,
		Reason:     "work",
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return &models.WorkResult{
		Earned:     earned,
		Multiplier: multiplier,
		NewBalance: newBalance,
	}, nil
}
