package balance

import (
	"github.com/bwmarrin/discordgo"

	"megabot/service"
)

type Feature struct {
	accountService service.AccountService
}

func New(accountService service.AccountService) *Feature {
	return &Feature{
		accountService: accountService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "balance":
		f.handleBalance(s, i)
	case "leaderboard":
		f.handleLeaderboard(s, i)
	case "inventory":
		f.handleInventory(s, i)
	case "boosts":
		f.handleBoosts(s, i)
	}
}
