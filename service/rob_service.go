package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"megabot/config"
	"megabot/events"
	"megabot/models"
)

// Rob success-rate modifiers, additive on a base of 50, clamped to [5, 90]
const (
	robBaseRate        = 50
	robPadlockPenalty  = 15
	robAlarmPenalty    = 20
	robGuardDogPenalty = 25
	robLockpickBonus   = 20
	robMinRate         = 5
	robMaxRate         = 90

	// Stolen fraction of the victim's balance on success
	robStealFractionMin = 0.10
	robStealFractionMax = 0.30

	// Guard dog counter-attack chance on a successful robbery
	robCounterAttackChance = 0.30
)

type robService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      Clock
	rng        Rand
	locker     *AccountLocker
}

// NewRobService creates a new rob service
func NewRobService(uowFactory UnitOfWorkFactory, cfg *config.Config, clock Clock, rng Rand, locker *AccountLocker) RobService {
	return &robService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
		rng:        rng,
		locker:     locker,
	}
}

// Rob attempts to steal from the victim. Precondition failures leave all
// state untouched and do not start the cooldown; a resolved attempt always
// records history and starts the cooldown, success or not.
func (s *robService) Rob(ctx context.Context, robberID, victimID, guildID int64) (*models.RobResult, error) {
	if robberID == victimID {
		return nil, fmt.Errorf("%w: cannot rob yourself", ErrInvalidTarget)
	}

	unlock := s.locker.LockPair(guildID, robberID, victimID)
	defer unlock()

	now := s.clock.Now()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback() // No-op if already committed

	robber, _, err := uow.AccountRepository().GetOrCreate(ctx, robberID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}

	if robber.LastRob != nil {
		elapsed := now.Sub(*robber.LastRob)
		if elapsed < s.cfg.RobCooldown {
			return nil, &CooldownError{Remaining: s.cfg.RobCooldown - elapsed}
		}
	}
	if robber.Balance < s.cfg.MinRobberBalance {
		return nil, fmt.Errorf("%w: need at least %d to attempt a robbery", ErrInsufficientFunds, s.cfg.MinRobberBalance)
	}

	victim, _, err := uow.AccountRepository().GetOrCreate(ctx, victimID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}
	if victim.Balance < s.cfg.MinVictimBalance {
		return nil, ErrTargetTooPoor
	}

	inv := uow.InventoryRepository()

	padlocks, err := inv.GetQuantity(ctx, victimID, guildID, models.ItemPadlock)
	if err != nil {
		return nil, storageError(err)
	}
	alarms, err := inv.GetQuantity(ctx, victimID, guildID, models.ItemAlarmSystem)
	if err != nil {
		return nil, storageError(err)
	}
	guardDogs, err := inv.GetQuantity(ctx, victimID, guildID, models.ItemGuardDog)
	if err != nil {
		return nil, storageError(err)
	}
	lockpicks, err := inv.GetQuantity(ctx, robberID, guildID, models.ItemLockpick)
	if err != nil {
		return nil, storageError(err)
	}

	// All modifiers stack additively before the roll
	rate := robBaseRate
	if padlocks > 0 {
		rate -= robPadlockPenalty
	}
	if alarms > 0 {
		rate -= robAlarmPenalty
	}
	if guardDogs > 0 {
		rate -= robGuardDogPenalty
	}
	if lockpicks > 0 {
		rate += robLockpickBonus
	}
	if rate < robMinRate {
		rate = robMinRate
	}
	if rate > robMaxRate {
		rate = robMaxRate
	}

	roll := s.rng.Intn(100) + 1
	success := roll <= rate

	result := &models.RobResult{
		Success:     success,
		SuccessRate: rate,
	}

	if success {
		fraction := robStealFractionMin + s.rng.Float64()*(robStealFractionMax-robStealFractionMin)
		stolen := int64(float64(victim.Balance) * fraction)
		if stolen > victim.Balance {
			stolen = victim.Balance
		}
		result.Amount = stolen

		if _, err := uow.AccountRepository().AdjustBalance(ctx, victimID, guildID, -stolen); err != nil {
			return nil, storageError(err)
		}
		newBalance, err := uow.AccountRepository().AdjustBalance(ctx, robberID, guildID, stolen)
		if err != nil {
			return nil, storageError(err)
		}
		if err := uow.AccountRepository().AddEarned(ctx, robberID, guildID, stolen); err != nil {
			return nil, storageError(err)
		}
		result.NewBalance = newBalance

		// The guard dog bites back on the way out; its charge is only
		// consumed when the counter-attack actually triggers
		if guardDogs > 0 && s.rng.Float64() < robCounterAttackChance {
			penalty := randRange(s.rng, s.cfg.GuardDogPenaltyMin, s.cfg.GuardDogPenaltyMax)
			newBalance, err = uow.AccountRepository().AdjustBalance(ctx, robberID, guildID, -penalty)
			if err != nil {
				return nil, storageError(err)
			}
			if _, err := inv.Consume(ctx, victimID, guildID, models.ItemGuardDog, 1); err != nil {
				return nil, storageError(err)
			}
			result.CounterAttack = true
			result.CounterPenalty = penalty
			result.NewBalance = newBalance
		}
	} else {
		fine := randRange(s.rng, s.cfg.RobFineMin, s.cfg.RobFineMax)
		result.Fine = fine

		newBalance, err := uow.AccountRepository().AdjustBalance(ctx, robberID, guildID, -fine)
		if err != nil {
			return nil, storageError(err)
		}
		result.NewBalance = newBalance

		// A tripped alarm pays the victim half the fine and burns out
		if alarms > 0 {
			compensation := fine / 2
			if compensation > 0 {
				if _, err := uow.AccountRepository().AdjustBalance(ctx, victimID, guildID, compensation); err != nil {
					return nil, storageError(err)
				}
			}
			if _, err := inv.Consume(ctx, victimID, guildID, models.ItemAlarmSystem, 1); err != nil {
				return nil, storageError(err)
			}
			result.Compensation = compensation
		}
	}

	attempt := &models.RobAttempt{
		RobberID:  robberID,
		VictimID:  victimID,
		GuildID:   guildID,
		Amount:    result.Amount,
		Success:   success,
		Timestamp: now,
	}
	if err := uow.RobHistoryRepository().Record(ctx, attempt); err != nil {
		return nil, storageError(err)
	}

	// The cooldown starts on every resolved attempt, success or failure
	if err := uow.AccountRepository().SetLastRob(ctx, robberID, guildID, now); err != nil {
		return nil, storageError(err)
	}

	uow.EventBus().Publish(events.RobResolvedEvent{
		RobberID: robberID,
		VictimID: victimID,
		GuildID:  guildID,
		Amount:   result.Amount,
		Success:  success,
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	log.WithFields(log.Fields{
		"robberID": robberID,
		"victimID": victimID,
		"guildID":  guildID,
		"rate":     rate,
		"success":  success,
		"amount":   result.Amount,
	}).Debug("Rob attempt resolved")

	return result, nil
}

// GetRobStats returns robbery statistics for a user
func (s *robService) GetRobStats(ctx context.Context, userID, guildID int64) (*models.RobStats, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	stats, err := uow.RobHistoryRepository().GetStats(ctx, userID, guildID)
	if err != nil {
		return nil, storageError(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return stats, nil
}
