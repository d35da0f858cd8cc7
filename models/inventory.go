package models

import (
	"time"
)

// ItemType categorizes shop items
type ItemType string

const (
	ItemTypeSecurity   ItemType = "security"
	ItemTypeTool       ItemType = "tool"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeSpecial    ItemType = "special"
)

// InventoryItem is a stackable item holding. A row with quantity 0 is
// logically absent and never returned by list queries.
type InventoryItem struct {
	UserID      int64     `db:"user_id"`
	GuildID     int64     `db:"guild_id"`
	Item        ItemID    `db:"item_name"`
	Type        ItemType  `db:"item_type"`
	Quantity    int64     `db:"quantity"`
	PurchasedAt time.Time `db:"purchased_at"`
}
