package service

import (
	"megabot/models"
)

// hasEffect reports whether an active boost of the given kind is present
func hasEffect(boosts []*models.Boost, kind models.EffectKind) bool {
	for _, boost := range boosts {
		if boost.Effect == kind {
			return true
		}
	}
	return false
}
