package repository

import (
	"context"
	"fmt"

	"megabot/database"
	"megabot/models"
)

// RobHistoryRepository implements the service.RobHistoryRepository interface
type RobHistoryRepository struct {
	q queryable
}

// NewRobHistoryRepository creates a new rob history repository
func NewRobHistoryRepository(db *database.DB) *RobHistoryRepository {
	return &RobHistoryRepository{q: db.Pool}
}

// newRobHistoryRepositoryWithTx creates a new rob history repository with a transaction
func newRobHistoryRepositoryWithTx(tx queryable) *RobHistoryRepository {
	return &RobHistoryRepository{q: tx}
}

// Record appends a resolved rob attempt. Rows are never updated or deleted.
func (r *RobHistoryRepository) Record(ctx context.Context, attempt *models.RobAttempt) error {
	query := `
		INSERT INTO rob_history (robber_id, victim_id, guild_id, amount, success, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		attempt.RobberID,
		attempt.VictimID,
		attempt.GuildID,
		attempt.Amount,
		attempt.Success,
		attempt.Timestamp,
	).Scan(&attempt.ID)
	if err != nil {
		return fmt.Errorf("failed to record rob attempt by %d on %d: %w", attempt.RobberID, attempt.VictimID, err)
	}

	return nil
}

// GetStats returns robbery statistics for a user in a guild
func (r *RobHistoryRepository) GetStats(ctx context.Context, userID, guildID int64) (*models.RobStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE robber_id = $1),
			COUNT(*) FILTER (WHERE robber_id = $1 AND success),
			COUNT(*) FILTER (WHERE victim_id = $1)
		FROM rob_history
		WHERE guild_id = $2 AND (robber_id = $1 OR victim_id = $1)
	`

	var stats models.RobStats
	err := r.q.QueryRow(ctx, query, userID, guildID).Scan(
		&stats.Attempts,
		&stats.Successes,
		&stats.TimesRobbed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get rob stats for %d/%d: %w", userID, guildID, err)
	}

	return &stats, nil
}
