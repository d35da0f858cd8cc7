package rob

import (
	"github.com/bwmarrin/discordgo"

	"megabot/service"
)

type Feature struct {
	robService service.RobService
}

func New(robService service.RobService) *Feature {
	return &Feature{
		robService: robService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "attempt":
		f.handleAttempt(s, i, options[0])
	case "stats":
		f.handleStats(s, i, options[0])
	}
}
