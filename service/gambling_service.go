package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"megabot/config"
	"megabot/events"
	"megabot/models"
)

// Slot reel, rarest last. Weights are per-symbol draw weights out of 100;
// better_odds shifts weight toward the rare symbols.
var (
	slotSymbols       = []string{"🍒", "🍋", "🍊", "🍇", "💎", "7️⃣"}
	slotWeights       = []int{30, 25, 20, 15, 8, 2}
	slotWeightsLoaded = []int{22, 20, 18, 16, 14, 10}
)

// Triple payout multipliers
const (
	slotsTripleMultiplier  = 5
	slotsDiamondMultiplier = 10
	slotsSevenMultiplier   = 15
)

type gamblingService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      Clock
	rng        Rand
	locker     *AccountLocker
}

// NewGamblingService creates a new gambling service
func NewGamblingService(uowFactory UnitOfWorkFactory, cfg *config.Config, clock Clock, rng Rand, locker *AccountLocker) GamblingService {
	return &gamblingService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
		rng:        rng,
		locker:     locker,
	}
}

// PlaySlots pulls the slot machine. Three of a kind pays a multiple of the
// bet, a pair pays the bet back, anything else loses the bet. Wins are scaled
// by all_boost (x3) or gambling_boost (x2); losses never are.
func (s *gamblingService) PlaySlots(ctx context.Context, userID, guildID int64, bet int64) (*models.SlotsResult, error) {
	unlock := s.locker.Lock(userID, guildID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback() // No-op if already committed

	account, boosts, err := s.checkBet(ctx, uow, userID, guildID, bet)
	if err != nil {
		return nil, err
	}

	weights := slotWeights
	if hasEffect(boosts, models.EffectBetterOdds) {
		weights = slotWeightsLoaded
	}

	var symbols [3]string
	for i := range symbols {
		symbols[i] = s.drawSymbol(weights)
	}

	var multiplier int64
	var winnings int64
	switch {
	case symbols[0] == symbols[1] && symbols[1] == symbols[2]:
		switch symbols[0] {
		case "💎":
			multiplier = slotsDiamondMultiplier
		case "7️⃣":
			multiplier = slotsSevenMultiplier
		default:
			multiplier = slotsTripleMultiplier
		}
		winnings = bet * multiplier
	case symbols[0] == symbols[1] || symbols[1] == symbols[2]:
		multiplier = 1
		winnings = bet
	default:
		winnings = -bet
	}

	winnings = scaleWinnings(winnings, boosts)

	newBalance, err := s.settle(ctx, uow, account, winnings, "slots")
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	log.WithFields(log.Fields{
		"userID":   userID,
		"guildID":  guildID,
		"bet":      bet,
		"winnings": winnings,
	}).Debug("Slots resolved")

	return &models.SlotsResult{
		Symbols:    symbols,
		Multiplier: multiplier,
		Winnings:   winnings,
		NewBalance: newBalance,
	}, nil
}

// PlayBlackjack plays one simplified round: both hands draw uniformly in
// [15, 21]; the higher hand wins, equal hands push. Wins are boost-scaled,
// losses are not.
func (s *gamblingService) PlayBlackjack(ctx context.Context, userID, guildID int64, bet int64) (*models.BlackjackResult, error) {
	unlock := s.locker.Lock(userID, guildID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	account, boosts, err := s.checkBet(ctx, uow, userID, guildID, bet)
	if err != nil {
		return nil, err
	}

	playerHand := 15 + s.rng.Intn(7)
	dealerHand := 15 + s.rng.Intn(7)

	var outcome models.BlackjackOutcome
	var winnings int64
	switch {
	case playerHand > dealerHand:
		outcome = models.BlackjackWin
		winnings = scaleWinnings(bet, boosts)
	case playerHand == dealerHand:
		outcome = models.BlackjackPush
	default:
		outcome = models.BlackjackLoss
		winnings = -bet
	}

	newBalance, err := s.settle(ctx, uow, account, winnings, "blackjack")
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return &models.BlackjackResult{
		PlayerHand: playerHand,
		DealerHand: dealerHand,
		Outcome:    outcome,
		Winnings:   winnings,
		NewBalance: newBalance,
	}, nil
}

// checkBet validates the bet against the minimum and the current balance and
// returns the account and active boosts
func (s *gamblingService) checkBet(ctx context.Context, uow UnitOfWork, userID, guildID int64, bet int64) (*models.Account, []*models.Boost, error) {
	if bet < s.cfg.MinimumBet {
		return nil, nil, fmt.Errorf("%w: minimum bet is %d", ErrInvalidInput, s.cfg.MinimumBet)
	}

	account, _, err := uow.AccountRepository().GetOrCreate(ctx, userID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, nil, storageError(err)
	}
	if bet > account.Balance {
		return nil, nil, ErrInsufficientFunds
	}

	boosts, err := uow.BoostRepository().ListActive(ctx, userID, guildID, s.clock.Now())
	if err != nil {
		return nil, nil, storageError(err)
	}

	return account, boosts, nil
}

// settle applies the net winnings to the account and publishes the balance
// change. A push (zero winnings) settles without touching the ledger.
func (s *gamblingService) settle(ctx context.Context, uow UnitOfWork, account *models.Account, winnings int64, game string) (int64, error) {
	if winnings == 0 {
		return account.Balance, nil
	}

	newBalance, err := uow.AccountRepository().AdjustBalance(ctx, account.UserID, account.GuildID, winnings)
	if err != nil {
		return 0, storageError(err)
	}
	if winnings > 0 {
		if err := uow.AccountRepository().AddEarned(ctx, account.UserID, account.GuildID, winnings); err != nil {
			return 0, storageError(err)
		}
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:     account.UserID,
		GuildID:    account.GuildID,
		OldBalance: account.Balance,
		NewBalance: newBalance,
		Reason:     game,
	})

	return newBalance, nil
}

func (s *gamblingService) drawSymbol(weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}

	roll := s.rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return slotSymbols[i]
		}
		roll -= w
	}
	return slotSymbols[len(slotSymbols)-1]
}

// scaleWinnings applies win-side boost scaling: x3 with all_boost, else x2
// with gambling_boost. Losses pass through unscaled.
func scaleWinnings(winnings int64, boosts []*models.Boost) int64 {
	if winnings <= 0 {
		return winnings
	}
	switch {
	case hasEffect(boosts, models.EffectAllBoost):
		return winnings * 3
	case hasEffect(boosts, models.EffectGamblingBoost):
		return winnings * 2
	}
	return winnings
}
