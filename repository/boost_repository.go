package repository

import (
	"context"
	"fmt"
	"time"

	"megabot/database"
	"megabot/models"
)

// BoostRepository implements the service.BoostRepository interface
type BoostRepository struct {
	q queryable
}

// NewBoostRepository creates a new boost repository
func NewBoostRepository(db *database.DB) *BoostRepository {
	return &BoostRepository{q: db.Pool}
}

// newBoostRepositoryWithTx creates a new boost repository with a transaction
func newBoostRepositoryWithTx(tx queryable) *BoostRepository {
	return &BoostRepository{q: tx}
}

// Grant inserts a new boost row; a nil expiry means permanent.
// Duplicate-effect checks are the caller's responsibility.
func (r *BoostRepository) Grant(ctx context.Context, userID, guildID int64, effect models.EffectKind, expiry *time.Time) (*models.Boost, error) {
	query := `
		INSERT INTO boosts (user_id, guild_id, effect_kind, expiry)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, guild_id, effect_kind, expiry, created_at
	`

	var boost models.Boost
	err := r.q.QueryRow(ctx, query, userID, guildID, effect, expiry).Scan(
		&boost.ID,
		&boost.UserID,
		&boost.GuildID,
		&boost.Effect,
		&boost.Expiry,
		&boost.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to grant %s boost for %d/%d: %w", effect, userID, guildID, err)
	}

	return &boost, nil
}

// ListActive returns all boosts active at the given instant. Expired rows
// are purged opportunistically on each read.
func (r *BoostRepository) ListActive(ctx context.Context, userID, guildID int64, now time.Time) ([]*models.Boost, error) {
	purge := `DELETE FROM boosts WHERE expiry IS NOT NULL AND expiry <= $1`
	if _, err := r.q.Exec(ctx, purge, now); err != nil {
		return nil, fmt.Errorf("failed to purge expired boosts: %w", err)
	}

	query := `
		SELECT id, user_id, guild_id, effect_kind, expiry, created_at
		FROM boosts
		WHERE user_id = $1 AND guild_id = $2
		  AND (expiry IS NULL OR expiry > $3)
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, userID, guildID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active boosts for %d/%d: %w", userID, guildID, err)
	}
	defer rows.Close()

	var boosts []*models.Boost
	for rows.Next() {
		var boost models.Boost
		err := rows.Scan(
			&boost.ID,
			&boost.UserID,
			&boost.GuildID,
			&boost.Effect,
			&boost.Expiry,
			&boost.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan boost: %w", err)
		}
		boosts = append(boosts, &boost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boosts: %w", err)
	}

	return boosts, nil
}

// RemoveExpired purges all boost rows whose expiry has passed
func (r *BoostRepository) RemoveExpired(ctx context.Context, now time.Time) error {
	query := `DELETE FROM boosts WHERE expiry IS NOT NULL AND expiry <= $1`

	if _, err := r.q.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("failed to remove expired boosts: %w", err)
	}

	return nil
}
