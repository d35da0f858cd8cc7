package economy

import (
	"github.com/bwmarrin/discordgo"

	"megabot/service"
)

type Feature struct {
	rewardsService service.RewardsService
}

func New(rewardsService service.RewardsService) *Feature {
	return &Feature{
		rewardsService: rewardsService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "daily":
		f.handleDaily(s, i)
	case "work":
		f.handleWork(s, i)
	}
}
