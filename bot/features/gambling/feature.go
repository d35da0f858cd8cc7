package gambling

import (
	"github.com/bwmarrin/discordgo"

	"megabot/service"
)

type Feature struct {
	gamblingService service.GamblingService
}

func New(gamblingService service.GamblingService) *Feature {
	return &Feature{
		gamblingService: gamblingService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "slots":
		f.handleSlots(s, i)
	case "blackjack":
		f.handleBlackjack(s, i)
	}
}
