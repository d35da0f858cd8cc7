package rob

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/common"
)

func (f *Feature) handleAttempt(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	robberID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var victim *discordgo.User
	for _, opt := range sub.Options {
		if opt.Name == "target" {
			victim = opt.UserValue(s)
		}
	}
	if victim == nil {
		common.RespondWithError(s, i, "Pick someone to rob.")
		return
	}
	if victim.Bot {
		common.RespondWithError(s, i, "Bots keep their coins in cold storage.")
		return
	}

	victimID, err := common.ParseUserID(victim.ID)
	if err != nil {
		log.Errorf("Error parsing victim ID %s: %v", victim.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.robService.Rob(ctx, robberID, victimID, guildID)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	if result.Success {
		message := fmt.Sprintf("🦹 You robbed <@%d> and got away with **%s coins**! (success chance was %d%%)",
			victimID, common.FormatCoins(result.Amount), result.SuccessRate)
		if result.CounterAttack {
			message += fmt.Sprintf("\n🐕 Their guard dog bit you on the way out: **-%s coins**.", common.FormatCoins(result.CounterPenalty))
		}
		message += fmt.Sprintf("\nNew balance: **%s coins**", common.FormatCoins(result.NewBalance))
		common.RespondWithContent(s, i, message)
		return
	}

	message := fmt.Sprintf("🚓 You got caught robbing <@%d> and paid a **%s coin** fine. (success chance was %d%%)",
		victimID, common.FormatCoins(result.Fine), result.SuccessRate)
	if result.Compensation > 0 {
		message += fmt.Sprintf("\n🚨 Their alarm went off: **%s coins** of your fine went to them.", common.FormatCoins(result.Compensation))
	}
	message += fmt.Sprintf("\nNew balance: **%s coins**", common.FormatCoins(result.NewBalance))
	common.RespondWithContent(s, i, message)
}

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Stats default to the caller but can be looked up for anyone
	for _, opt := range sub.Options {
		if opt.Name == "user" {
			if target := opt.UserValue(s); target != nil {
				userID, err = common.ParseUserID(target.ID)
				if err != nil {
					log.Errorf("Error parsing target ID: %v", err)
					common.RespondWithError(s, i, "Unable to process request. Please try again.")
					return
				}
			}
		}
	}

	stats, err := f.robService.GetRobStats(ctx, userID, guildID)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: "🦹 Robbery record",
		Description: fmt.Sprintf("<@%d>\nAttempts: **%d**\nSuccesses: **%d**\nTimes robbed: **%d**",
			userID, stats.Attempts, stats.Successes, stats.TimesRobbed),
		Color: 0xED4245,
	}, false)
}
