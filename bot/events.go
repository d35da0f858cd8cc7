package bot

import (
	"context"

	log "github.com/sirupsen/logrus"

	"megabot/events"
)

// onRobResolved records resolved robberies in the bot's audit log
func (b *Bot) onRobResolved(ctx context.Context, event events.Event) {
	resolved, ok := event.(events.RobResolvedEvent)
	if !ok {
		return
	}

	log.WithFields(log.Fields{
		"robberID": resolved.RobberID,
		"victimID": resolved.VictimID,
		"guildID":  resolved.GuildID,
		"amount":   resolved.Amount,
		"success":  resolved.Success,
	}).Info("Rob attempt resolved")
}
