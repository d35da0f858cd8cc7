package transfer

import (
	"github.com/bwmarrin/discordgo"

	"megabot/service"
)

type Feature struct {
	transferService service.TransferService
}

func New(transferService service.TransferService) *Feature {
	return &Feature{
		transferService: transferService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleTransfer(s, i)
}
