package models

import (
	"time"
)

// RobAttempt is an append-only audit record of one resolved robbery.
// Amount is 0 for failed attempts.
type RobAttempt struct {
	ID        int64     `db:"id"`
	RobberID  int64     `db:"robber_id"`
	VictimID  int64     `db:"victim_id"`
	GuildID   int64     `db:"guild_id"`
	Amount    int64     `db:"amount"`
	Success   bool      `db:"success"`
	Timestamp time.Time `db:"timestamp"`
}

// RobStats summarizes a user's robbery history in one guild
type RobStats struct {
	Attempts    int64
	Successes   int64
	TimesRobbed int64
}
