package testutil

import (
	"time"

	"megabot/models"
)

// CreateTestRobAttempt creates a resolved rob attempt record
func CreateTestRobAttempt(robberID, victimID, guildID int64, amount int64, success bool) *models.RobAttempt {
	return &models.RobAttempt{
		RobberID:  robberID,
		VictimID:  victimID,
		GuildID:   guildID,
		Amount:    amount,
		Success:   success,
		Timestamp: time.Now().UTC(),
	}
}

// FutureExpiry returns an expiry d from now
func FutureExpiry(d time.Duration) *time.Time {
	t := time.Now().UTC().Add(d)
	return &t
}

// PastExpiry returns an expiry d in the past
func PastExpiry(d time.Duration) *time.Time {
	t := time.Now().UTC().Add(-d)
	return &t
}
