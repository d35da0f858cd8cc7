package models

import (
	"time"
)

// EffectKind identifies the behavior a boost grants
type EffectKind string

const (
	EffectGamblingBoost EffectKind = "gambling_boost"
	EffectWorkBoost     EffectKind = "work_boost"
	EffectNoCooldown    EffectKind = "no_cooldown"
	EffectAllBoost      EffectKind = "all_boost"
	EffectBetterOdds    EffectKind = "better_odds"
	EffectDailyBoost    EffectKind = "daily_boost"
	EffectStockCooldown EffectKind = "stock_cooldown"
)

// Boost represents a temporary or permanent effect grant.
// A nil Expiry means the boost never expires.
type Boost struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	GuildID   int64      `db:"guild_id"`
	Effect    EffectKind `db:"effect_kind"`
	Expiry    *time.Time `db:"expiry"`
	CreatedAt time.Time  `db:"created_at"`
}

// ActiveAt reports whether the boost is active at the given instant
func (b *Boost) ActiveAt(now time.Time) bool {
	return b.Expiry == nil || b.Expiry.After(now)
}
