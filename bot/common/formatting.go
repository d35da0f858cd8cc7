package common

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"megabot/service"
)

// FormatCoins formats an amount with thousand separators
func FormatCoins(amount int64) string {
	str := fmt.Sprintf("%d", amount)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatDuration renders a duration as "2h 15m" / "45m" / "30s"
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that renders
// in each viewer's local timezone. "R" gives relative time.
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// ErrorMessage maps an engine failure to a user-facing message
func ErrorMessage(err error) string {
	var cooldownErr *service.CooldownError
	if errors.As(err, &cooldownErr) {
		return fmt.Sprintf("You're on cooldown. Try again in %s.", FormatDuration(cooldownErr.Remaining))
	}

	switch {
	case errors.Is(err, service.ErrInsufficientFunds):
		return "You don't have enough coins for that."
	case errors.Is(err, service.ErrInsufficientInventory):
		return "You don't have that item."
	case errors.Is(err, service.ErrInvalidTarget):
		return "You can't target yourself."
	case errors.Is(err, service.ErrTargetTooPoor):
		return "That target isn't worth robbing."
	case errors.Is(err, service.ErrAlreadyActive):
		return "You already have that effect active."
	case errors.Is(err, service.ErrNotFound):
		return "No such item. Check /shop for what's available."
	case errors.Is(err, service.ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), "invalid input: ")
	default:
		return "Something went wrong. Please try again."
	}
}
