package service

import (
	"strings"
	"time"

	"megabot/models"
)

func duration(d time.Duration) *time.Duration { return &d }

// catalog is the static shop inventory. Sell prices are half the purchase
// price. Items that grant no boost leave Effect empty.
var catalog = map[models.ItemID]*models.ShopItem{
	models.ItemLuckyCharm: {
		ID:          models.ItemLuckyCharm,
		Name:        "Lucky Charm",
		Price:       1000,
		SellPrice:   500,
		Type:        models.ItemTypeConsumable,
		Effect:      models.EffectGamblingBoost,
		Duration:    duration(time.Hour),
		Description: "2x gambling winnings for 1 hour",
	},
	models.ItemBriefcase: {
		ID:          models.ItemBriefcase,
		Name:        "Briefcase",
		Price:       2500,
		SellPrice:   1250,
		Type:        models.ItemTypeConsumable,
		Effect:      models.EffectWorkBoost,
		Duration:    duration(24 * time.Hour),
		Description: "2x work earnings for 24 hours",
	},
	models.ItemEnergyDrink: {
		ID:          models.ItemEnergyDrink,
		Name:        "Energy Drink",
		Price:       1500,
		SellPrice:   750,
		Type:        models.ItemTypeConsumable,
		Effect:      models.EffectNoCooldown,
		Duration:    duration(2 * time.Hour),
		Description: "Remove work cooldown for 2 hours",
	},
	models.ItemDiamondMultiplier: {
		ID:          models.ItemDiamondMultiplier,
		Name:        "Diamond Multiplier",
		Price:       10000,
		SellPrice:   5000,
		Type:        models.ItemTypeConsumable,
		Effect:      models.EffectAllBoost,
		Duration:    duration(time.Hour),
		Description: "3x all earnings for 1 hour",
	},
	models.ItemBankUpgrade: {
		ID:          models.ItemBankUpgrade,
		Name:        "Bank Upgrade",
		Price:       7500,
		SellPrice:   3750,
		Type:        models.ItemTypeConsumable,
		Effect:      models.EffectDailyBoost,
		Duration:    nil, // permanent
		Description: "Increase daily reward by 50% (permanent)",
	},
	models.ItemLoadedDice: {
		ID:          models.ItemLoadedDice,
		Name:        "Loaded Dice",
		Price:       3000,
		SellPrice:   1500,
		Type:        models.ItemTypeConsumable,
		Effect:      models.EffectBetterOdds,
		Duration:    duration(3 * time.Hour),
		Description: "Better gambling odds for 3 hours",
	},
	models.ItemStockMarketTip: {
		ID:          models.ItemStockMarketTip,
		Name:        "Stock Market Tip",
		Price:       500,
		SellPrice:   250,
		Type:        models.ItemTypeSpecial,
		Effect:      models.EffectStockCooldown,
		Duration:    duration(24 * time.Hour),
		Description: "Play the market for an instant gain or loss, once a day",
	},
	models.ItemPadlock: {
		ID:          models.ItemPadlock,
		Name:        "Padlock",
		Price:       250,
		SellPrice:   125,
		Type:        models.ItemTypeSecurity,
		Description: "Robbers are 15% less likely to succeed against you",
	},
	models.ItemAlarmSystem: {
		ID:          models.ItemAlarmSystem,
		Name:        "Alarm System",
		Price:       600,
		SellPrice:   300,
		Type:        models.ItemTypeSecurity,
		Description: "Robbers are 20% less likely to succeed; failed robbers pay you half their fine",
	},
	models.ItemGuardDog: {
		ID:          models.ItemGuardDog,
		Name:        "Guard Dog",
		Price:       1000,
		SellPrice:   500,
		Type:        models.ItemTypeSecurity,
		Description: "Robbers are 25% less likely to succeed and may get bitten",
	},
	models.ItemLockpick: {
		ID:          models.ItemLockpick,
		Name:        "Lockpick",
		Price:       400,
		SellPrice:   200,
		Type:        models.ItemTypeTool,
		Description: "You are 20% more likely to succeed when robbing",
	},
}

// catalogOrder fixes the display order of the shop
var catalogOrder = []models.ItemID{
	models.ItemLuckyCharm,
	models.ItemBriefcase,
	models.ItemEnergyDrink,
	models.ItemDiamondMultiplier,
	models.ItemBankUpgrade,
	models.ItemLoadedDice,
	models.ItemStockMarketTip,
	models.ItemPadlock,
	models.ItemAlarmSystem,
	models.ItemGuardDog,
	models.ItemLockpick,
}

// CatalogItem looks up a shop item by its typed identifier
func CatalogItem(id models.ItemID) (*models.ShopItem, bool) {
	item, ok := catalog[id]
	return item, ok
}

// ResolveItemName maps free-text user input ("Lucky Charm", "lucky_charm")
// to a typed item identifier
func ResolveItemName(name string) (models.ItemID, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	id := models.ItemID(normalized)
	if _, ok := catalog[id]; ok {
		return id, true
	}
	return "", false
}
