package transfer

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/common"
)

func (f *Feature) handleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	senderID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var amount int64
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Pick someone to send coins to.")
		return
	}
	if recipient.Bot {
		common.RespondWithError(s, i, "Bots have no use for coins.")
		return
	}

	recipientID, err := common.ParseUserID(recipient.ID)
	if err != nil {
		log.Errorf("Error parsing recipient ID %s: %v", recipient.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.transferService.Transfer(ctx, senderID, recipientID, guildID, amount)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("💸 You sent **%s coins** to <@%d>. New balance: **%s coins**",
		common.FormatCoins(result.Amount), recipientID, common.FormatCoins(result.NewBalance)))
}
