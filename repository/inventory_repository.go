package repository

import (
	"context"
	"fmt"

	"megabot/database"
	"megabot/models"
)

// InventoryRepository implements the service.InventoryRepository interface
type InventoryRepository struct {
	q queryable
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *database.DB) *InventoryRepository {
	return &InventoryRepository{q: db.Pool}
}

// newInventoryRepositoryWithTx creates a new inventory repository with a transaction
func newInventoryRepositoryWithTx(tx queryable) *InventoryRepository {
	return &InventoryRepository{q: tx}
}

// AddItem increments an existing stack or creates a new one
func (r *InventoryRepository) AddItem(ctx context.Context, userID, guildID int64, item models.ItemID, itemType models.ItemType, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	query := `
		INSERT INTO inventory (user_id, guild_id, item_name, item_type, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, guild_id, item_name)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
	`

	if _, err := r.q.Exec(ctx, query, userID, guildID, item, itemType, quantity); err != nil {
		return fmt.Errorf("failed to add %d x %s for %d/%d: %w", quantity, item, userID, guildID, err)
	}

	return nil
}

// GetQuantity returns the held quantity, 0 if absent
func (r *InventoryRepository) GetQuantity(ctx context.Context, userID, guildID int64, item models.ItemID) (int64, error) {
	query := `
		SELECT COALESCE(
			(SELECT quantity FROM inventory WHERE user_id = $1 AND guild_id = $2 AND item_name = $3),
			0
		)
	`

	var quantity int64
	if err := r.q.QueryRow(ctx, query, userID, guildID, item).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("failed to get quantity of %s for %d/%d: %w", item, userID, guildID, err)
	}

	return quantity, nil
}

// Consume decrements the stack by quantity. Returns false without mutating
// when the held quantity is insufficient. This is the sole removal path for
// both the use and sell flows.
func (r *InventoryRepository) Consume(ctx context.Context, userID, guildID int64, item models.ItemID, quantity int64) (bool, error) {
	if quantity < 1 {
		return false, fmt.Errorf("quantity must be at least 1")
	}

	query := `
		UPDATE inventory
		SET quantity = quantity - $4
		WHERE user_id = $1 AND guild_id = $2 AND item_name = $3 AND quantity >= $4
	`

	result, err := r.q.Exec(ctx, query, userID, guildID, item, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to consume %d x %s for %d/%d: %w", quantity, item, userID, guildID, err)
	}

	return result.RowsAffected() > 0, nil
}

// ListItems returns all holdings with quantity > 0
func (r *InventoryRepository) ListItems(ctx context.Context, userID, guildID int64) ([]*models.InventoryItem, error) {
	query := `
		SELECT user_id, guild_id, item_name, item_type, quantity, purchased_at
		FROM inventory
		WHERE user_id = $1 AND guild_id = $2 AND quantity > 0
		ORDER BY item_name
	`

	rows, err := r.q.Query(ctx, query, userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory for %d/%d: %w", userID, guildID, err)
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		err := rows.Scan(
			&item.UserID,
			&item.GuildID,
			&item.Item,
			&item.Type,
			&item.Quantity,
			&item.PurchasedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}

	return items, nil
}
