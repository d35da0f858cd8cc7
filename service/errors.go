package service

import (
	"errors"
	"fmt"
	"time"
)

// Failure taxonomy for engine operations. Every operation either fully
// applies or returns one of these with state unmutated. Only
// ErrStorageUnavailable indicates an infrastructure problem.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidTarget         = errors.New("invalid target")
	ErrNotFound              = errors.New("not found")
	ErrAlreadyActive         = errors.New("boost already active")
	ErrTargetTooPoor         = errors.New("target too poor")
	ErrStorageUnavailable    = errors.New("storage unavailable")
)

// CooldownError reports an operation attempted before its cooldown re-armed
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active: %s remaining", e.Remaining.Round(time.Second))
}

// storageError wraps a persistence failure so callers can match it with
// errors.Is(err, ErrStorageUnavailable) while keeping the cause in the chain
func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
