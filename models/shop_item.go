package models

import (
	"time"
)

// ItemID identifies a catalog item. Commands resolve free-text input to an
// ItemID before calling the engine, so unknown names fail up front instead of
// silently changing behavior downstream.
type ItemID string

const (
	ItemLuckyCharm        ItemID = "lucky_charm"
	ItemBriefcase         ItemID = "briefcase"
	ItemEnergyDrink       ItemID = "energy_drink"
	ItemDiamondMultiplier ItemID = "diamond_multiplier"
	ItemBankUpgrade       ItemID = "bank_upgrade"
	ItemLoadedDice        ItemID = "loaded_dice"
	ItemStockMarketTip    ItemID = "stock_market_tip"
	ItemPadlock           ItemID = "padlock"
	ItemAlarmSystem       ItemID = "alarm_system"
	ItemGuardDog          ItemID = "guard_dog"
	ItemLockpick          ItemID = "lockpick"
)

// ShopItem is an immutable catalog entry. Effect is empty for items that do
// not grant a boost; Duration is nil for permanent or non-boost items.
type ShopItem struct {
	ID          ItemID
	Name        string
	Price       int64
	SellPrice   int64
	Type        ItemType
	Effect      EffectKind
	Duration    *time.Duration
	Description string
}

// Usable reports whether the item can be activated with use_item
func (s *ShopItem) Usable() bool {
	return s.Type == ItemTypeConsumable || s.Type == ItemTypeSpecial
}
