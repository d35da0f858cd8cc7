package service

import (
	"time"
)

// Clock supplies the current time. Injected so cooldown and expiry logic
// can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by the wall clock, in UTC
func SystemClock() Clock { return systemClock{} }
