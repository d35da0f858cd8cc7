package repository

import (
	"context"
	"fmt"
	"time"

	"megabot/database"
	"megabot/models"
)

// AccountRepository implements the service.AccountRepository interface
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepositoryWithTx creates a new account repository with a transaction
func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// GetOrCreate retrieves an account, creating it with the starting balance on
// first access. The bool reports whether a row was created.
func (r *AccountRepository) GetOrCreate(ctx context.Context, userID, guildID int64, startingBalance int64) (*models.Account, bool, error) {
	insert := `
		INSERT INTO accounts (user_id, guild_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, guild_id) DO NOTHING
	`

	result, err := r.q.Exec(ctx, insert, userID, guildID, startingBalance)
	if err != nil {
		return nil, false, fmt.Errorf("failed to ensure account %d/%d: %w", userID, guildID, err)
	}
	created := result.RowsAffected() > 0

	query := `
		SELECT user_id, guild_id, balance, total_earned, last_daily, last_work, last_rob, created_at, updated_at
		FROM accounts
		WHERE user_id = $1 AND guild_id = $2
	`

	var account models.Account
	err = r.q.QueryRow(ctx, query, userID, guildID).Scan(
		&account.UserID,
		&account.GuildID,
		&account.Balance,
		&account.TotalEarned,
		&account.LastDaily,
		&account.LastWork,
		&account.LastRob,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get account %d/%d: %w", userID, guildID, err)
	}

	return &account, created, nil
}

// AdjustBalance applies delta to the balance, clamping the result at zero,
// and returns the new balance
func (r *AccountRepository) AdjustBalance(ctx context.Context, userID, guildID int64, delta int64) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = GREATEST(0, balance + $3), updated_at = NOW()
		WHERE user_id = $1 AND guild_id = $2
		RETURNING balance
	`

	var newBalance int64
	err := r.q.QueryRow(ctx, query, userID, guildID, delta).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for account %d/%d: %w", userID, guildID, err)
	}

	return newBalance, nil
}

// AddEarned bumps the total_earned statistic
func (r *AccountRepository) AddEarned(ctx context.Context, userID, guildID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		UPDATE accounts
		SET total_earned = total_earned + $3, updated_at = NOW()
		WHERE user_id = $1 AND guild_id = $2
	`

	result, err := r.q.Exec(ctx, query, userID, guildID, amount)
	if err != nil {
		return fmt.Errorf("failed to add earned for account %d/%d: %w", userID, guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d/%d not found", userID, guildID)
	}

	return nil
}

// SetLastDaily records the time of the latest daily claim
func (r *AccountRepository) SetLastDaily(ctx context.Context, userID, guildID int64, t time.Time) error {
	return r.setTimestamp(ctx, "last_daily", userID, guildID, t)
}

// SetLastWork records the time of the latest work shift
func (r *AccountRepository) SetLastWork(ctx context.Context, userID, guildID int64, t time.Time) error {
	return r.setTimestamp(ctx, "last_work", userID, guildID, t)
}

// SetLastRob records the time of the latest resolved rob attempt
func (r *AccountRepository) SetLastRob(ctx context.Context, userID, guildID int64, t time.Time) error {
	return r.setTimestamp(ctx, "last_rob", userID, guildID, t)
}

func (r *AccountRepository) setTimestamp(ctx context.Context, column string, userID, guildID int64, t time.Time) error {
	// column is one of the fixed cooldown columns, never user input
	query := fmt.Sprintf(`
		UPDATE accounts
		SET %s = $3, updated_at = NOW()
		WHERE user_id = $1 AND guild_id = $2
	`, column)

	result, err := r.q.Exec(ctx, query, userID, guildID, t)
	if err != nil {
		return fmt.Errorf("failed to set %s for account %d/%d: %w", column, userID, guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d/%d not found", userID, guildID)
	}

	return nil
}

// GetLeaderboard returns up to limit accounts of a guild ordered by balance
// descending
func (r *AccountRepository) GetLeaderboard(ctx context.Context, guildID int64, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT user_id, balance
		FROM accounts
		WHERE guild_id = $1
		ORDER BY balance DESC, user_id
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}

	return entries, nil
}
