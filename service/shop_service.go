package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"megabot/config"
	"megabot/events"
	"megabot/models"
)

// Stock market tip outcome buckets, checked in order against one uniform
// draw. Payouts are percentages of the tip's catalog price.
var stockTipBuckets = []struct {
	chance     float64
	minPercent int64
	maxPercent int64
}{
	{0.30, -100, -100}, // total loss
	{0.20, -25, -5},    // small loss
	{0.25, 10, 50},     // modest gain
	{0.15, 100, 200},   // large gain
	{0.05, 400, 900},   // jackpot
}

type shopService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      Clock
	rng        Rand
	locker     *AccountLocker
}

// NewShopService creates a new shop service
func NewShopService(uowFactory UnitOfWorkFactory, cfg *config.Config, clock Clock, rng Rand, locker *AccountLocker) ShopService {
	return &shopService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clock,
		rng:        rng,
		locker:     locker,
	}
}

// Catalog returns all purchasable items in display order
func (s *shopService) Catalog() []*models.ShopItem {
	items := make([]*models.ShopItem, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		items = append(items, catalog[id])
	}
	return items
}

// Buy purchases one unit of an item into the inventory. Every item lands in
// the inventory; effects only apply on use.
func (s *shopService) Buy(ctx context.Context, userID, guildID int64, item models.ItemID) (*models.PurchaseResult, error) {
	shopItem, ok := CatalogItem(item)
	if !ok {
		return nil, fmt.Errorf("%w: unknown item %q", ErrNotFound, item)
	}

	unlock := s.locker.Lock(userID, guildID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback() // No-op if already committed

	account, _, err := uow.AccountRepository().GetOrCreate(ctx, userID, guildID, s.cfg.StartingBalance)
	if err != nil {
		return nil, storageError(err)
	}
	if account.Balance < shopItem.Price {
		return nil, ErrInsufficientFunds
	}

	newBalance, err := uow.AccountRepository().AdjustBalance(ctx, userID, guildID, -shopItem.Price)
	if err != nil {
		return nil, storageError(err)
	}
	if err := uow.InventoryRepository().AddItem(ctx, userID, guildID, item, shopItem.Type, 1); err != nil {
		return nil, storageError(err)
	}

	uow.EventBus().Publish(events.ItemPurchasedEvent{
		UserID:  userID,
		GuildID: guildID,
		Item:    string(item),
		Price:   shopItem.Price,
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"guildID": guildID,
		"item":    item,
		"price":   shopItem.Price,
	}).Debug("Item purchased")

	return &models.PurchaseResult{
		Item:       item,
		Price:      shopItem.Price,
		NewBalance: newBalance,
	}, nil
}

// UseItem consumes one unit and applies its effect: boost items grant their
// boost, the stock market tip pays out immediately and arms a 24h
// stock_cooldown to block re-use.
func (s *shopService) UseItem(ctx context.Context, userID, guildID int64, item models.ItemID) (*models.UseItemResult, error) {
	shopItem, ok := CatalogItem(item)
	if !ok {
		return nil, fmt.Errorf("%w: unknown item %q", ErrNotFound, item)
	}
	if !shopItem.Usable() {
		return nil, fmt.Errorf("%w: %s cannot be used", ErrInvalidInput, shopItem.Name)
	}

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

	// Duplicate check runs before the consume so a rejected use leaves the
	// inventory untouched
	boosts, err := uow.BoostRepository().ListActive(ctx, userID, guildID, now)
	if err != nil {
		return nil, storageError(err)
	}
	if hasEffect(boosts, shopItem.Effect) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyActive, shopItem.Effect)
	}

	consumed, err := uow.InventoryRepository().Consume(ctx, userID, guildID, item, 1)
	if err != nil {
		return nil, storageError(err)
	}
	if !consumed {
		return nil, ErrInsufficientInventory
	}

	result := &models.UseItemResult{
		Item:       item,
		Effect:     shopItem.Effect,
		NewBalance: account.Balance,
	}

	if item == models.ItemStockMarketTip {
		payout := s.drawStockPayout(shopItem.Price)
		result.Payout = payout

		newBalance := account.Balance
		if payout != 0 {
			newBalance, err = uow.AccountRepository().AdjustBalance(ctx, userID, guildID, payout)
			if err != nil {
				return nil, storageError(err)
			}
		}
		if payout > 0 {
			if err := uow.AccountRepository().AddEarned(ctx, userID, guildID, payout); err != nil {
				return nil, storageError(err)
			}
		}
		result.NewBalance = newBalance

		uow.EventBus().Publish(events.BalanceChangeEvent{
			UserID:     userID,
			GuildID:    guildID,
			OldBalance: account.Balance,
			NewBalance: newBalance,
			Reason:     "stock_tip",
		})
	}

	var expiry *time.Time
	if shopItem.Duration != nil {
		t := now.Add(*shopItem.Duration)
		expiry = &t
	}
	boost, err := uow.BoostRepository().Grant(ctx, userID, guildID, shopItem.Effect, expiry)
	if err != nil {
		return nil, storageError(err)
	}
	result.Expiry = boost.Expiry

	uow.EventBus().Publish(events.BoostGrantedEvent{
		UserID:  userID,
		GuildID: guildID,
		Effect:  string(shopItem.Effect),
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return result, nil
}

// SellItem converts held items back into currency at the sell price
func (s *shopService) SellItem(ctx context.Context, userID, guildID int64, item models.ItemID, quantity int64) (*models.SellResult, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	shopItem, ok := CatalogItem(item)
	if !ok {
		return nil, fmt.Errorf("%w: unknown item %q", ErrNotFound, item)
	}

	unlock := s.locker.Lock(userID, guildID)
	defer unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageError(err)
	}
	defer uow.Rollback()

	if _, _, err := uow.AccountRepository().GetOrCreate(ctx, userID, guildID, s.cfg.StartingBalance); err != nil {
		return nil, storageError(err)
	}

	consumed, err := uow.InventoryRepository().Consume(ctx, userID, guildID, item, quantity)
	if err != nil {
		return nil, storageError(err)
	}
	if !consumed {
		return nil, ErrInsufficientInventory
	}

	proceeds := shopItem.SellPrice * quantity
	newBalance, err := uow.AccountRepository().AdjustBalance(ctx, userID, guildID, proceeds)
	if err != nil {
		return nil, storageError(err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:     userID,
		GuildID:    guildID,
		OldBalance: newBalance - proceeds,
		NewBalance: newBalance,
		Reason:     "sell_item",
	})

	if err := uow.Commit(); err != nil {
		return nil, storageError(err)
	}

	return &models.SellResult{
		Item:       item,
		Quantity:   quantity,
		Proceeds:   proceeds,
		NewBalance: newBalance,
	}, nil
}

// drawStockPayout buckets one uniform draw into an outcome and draws the
// payout within that bucket's range
func (s *shopService) drawStockPayout(price int64) int64 {
	roll := s.rng.Float64()

	cumulative := 0.0
	for _, bucket := range stockTipBuckets {
		cumulative += bucket.chance
		if roll < cumulative {
			percent := randRange(s.rng, bucket.minPercent, bucket.maxPercent)
			return price * percent / 100
		}
	}

	// Float rounding can leave the roll just past the last boundary
	last := stockTipBuckets[len(stockTipBuckets)-1]
	return price * randRange(s.rng, last.minPercent, last.maxPercent) / 100
}
