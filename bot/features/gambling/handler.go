package gambling

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/common"
	"megabot/models"
)

func (f *Feature) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := betOption(i)
	result, err := f.gamblingService.PlaySlots(ctx, userID, guildID, bet)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	reels := strings.Join(result.Symbols[:], " | ")

	var outcome string
	switch {
	case result.Winnings > 0:
		outcome = fmt.Sprintf("🎉 You won **%s coins**!", common.FormatCoins(result.Winnings))
	case result.Winnings == 0:
		outcome = "You broke even."
	default:
		outcome = fmt.Sprintf("😔 You lost **%s coins**.", common.FormatCoins(-result.Winnings))
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🎰 Slots",
		Description: fmt.Sprintf("**[ %s ]**\n\n%s\nNew balance: **%s coins**", reels, outcome, common.FormatCoins(result.NewBalance)),
		Color:       slotsColor(result.Winnings),
	}, false)
}

func (f *Feature) handleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := betOption(i)
	result, err := f.gamblingService.PlayBlackjack(ctx, userID, guildID, bet)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	var outcome string
	switch result.Outcome {
	case models.BlackjackWin:
		outcome = fmt.Sprintf("🎉 You won **%s coins**!", common.FormatCoins(result.Winnings))
	case models.BlackjackPush:
		outcome = "🤝 Push. Your bet is returned."
	default:
		outcome = fmt.Sprintf("😔 You lost **%s coins**.", common.FormatCoins(-result.Winnings))
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: "🃏 Blackjack",
		Description: fmt.Sprintf("Your hand: **%d**\nDealer's hand: **%d**\n\n%s\nNew balance: **%s coins**",
			result.PlayerHand, result.DealerHand, outcome, common.FormatCoins(result.NewBalance)),
		Color: slotsColor(result.Winnings),
	}, false)
}

func betOption(i *discordgo.InteractionCreate) int64 {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "bet" {
			return opt.IntValue()
		}
	}
	return 0
}

func slotsColor(winnings int64) int {
	switch {
	case winnings > 0:
		return 0x57F287
	case winnings == 0:
		return 0x99AAB5
	default:
		return 0xED4245
	}
}
