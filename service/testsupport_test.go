package service

import (
	"time"

	"megabot/config"
)

// fixedClock pins Now() to one instant
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testClock() Clock { return fixedClock{now: testNow} }

// scriptedRand replays preset draws in order. Each draw kind has its own
// queue; running past the end of a queue returns zero, which keeps tests
// that only care about one draw kind short.
type scriptedRand struct {
	ints   []int
	int64s []int64
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Int63n(n int64) int64 {
	if len(r.int64s) == 0 {
		return 0
	}
	v := r.int64s[0]
	r.int64s = r.int64s[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func testConfig() *config.Config {
	return &config.Config{
		StartingBalance: 1000,
		DailyReward:     100,
		WorkRewardMin:   50,
		WorkRewardMax:   200,
		MinimumBet:      100,

		DailyCooldown: 24 * time.Hour,
		WorkCooldown:  time.Hour,
		RobCooldown:   2 * time.Hour,

		MinRobberBalance:   500,
		MinVictimBalance:   100,
		RobFineMin:         50,
		RobFineMax:         200,
		GuardDogPenaltyMin: 100,
		GuardDogPenaltyMax: 300,

		Environment: "test",
	}
}

func timePtr(t time.Time) *time.Time { return &t }
