package models

import (
	"time"
)

// Account represents a user's economy state within one guild
type Account struct {
	UserID      int64      `db:"user_id"`
	GuildID     int64      `db:"guild_id"`
	Balance     int64      `db:"balance"`
	TotalEarned int64      `db:"total_earned"`
	LastDaily   *time.Time `db:"last_daily"`
	LastWork    *time.Time `db:"last_work"`
	LastRob     *time.Time `db:"last_rob"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// LeaderboardEntry is one row of the guild balance ranking
type LeaderboardEntry struct {
	UserID  int64
	Balance int64
}
