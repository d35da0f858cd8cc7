package balance

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/common"
	"megabot/service"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	account, err := f.accountService.GetOrCreateAccount(ctx, userID, guildID)
	if err != nil {
		log.Errorf("Error getting account %d/%d: %v", userID, guildID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	message := fmt.Sprintf("💰 Your balance: **%s coins** (lifetime earned: %s)",
		common.FormatCoins(account.Balance), common.FormatCoins(account.TotalEarned))
	common.RespondWithContent(s, i, message)
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	_, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	limit := 10
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "count" {
			limit = int(opt.IntValue())
		}
	}
	if limit < 1 || limit > 25 {
		limit = 10
	}

	entries, err := f.accountService.GetLeaderboard(ctx, guildID, limit)
	if err != nil {
		log.Errorf("Error getting leaderboard for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "Unable to retrieve the leaderboard. Please try again.")
		return
	}

	if len(entries) == 0 {
		common.RespondWithContent(s, i, "Nobody has an account here yet.")
		return
	}

	var sb strings.Builder
	medals := []string{"🥇", "🥈", "🥉"}
	for rank, entry := range entries {
		marker := fmt.Sprintf("%d.", rank+1)
		if rank < len(medals) {
			marker = medals[rank]
		}
		fmt.Fprintf(&sb, "%s <@%d> — **%s coins**\n", marker, entry.UserID, common.FormatCoins(entry.Balance))
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🏆 Richest players",
		Description: sb.String(),
		Color:       0xFFD700,
	}, false)
}

func (f *Feature) handleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	items, err := f.accountService.ListInventory(ctx, userID, guildID)
	if err != nil {
		log.Errorf("Error listing inventory for %d/%d: %v", userID, guildID, err)
		common.RespondWithError(s, i, "Unable to retrieve your inventory. Please try again.")
		return
	}

	if len(items) == 0 {
		common.RespondWithContent(s, i, "Your inventory is empty. Check /shop to buy something.")
		return
	}

	var sb strings.Builder
	for _, item := range items {
		name := string(item.Item)
		if shopItem, ok := service.CatalogItem(item.Item); ok {
			name = shopItem.Name
		}
		fmt.Fprintf(&sb, "**%s** × %d\n", name, item.Quantity)
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🎒 Your inventory",
		Description: sb.String(),
		Color:       0x5865F2,
	}, true)
}

func (f *Feature) handleBoosts(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	boosts, err := f.accountService.ListBoosts(ctx, userID, guildID)
	if err != nil {
		log.Errorf("Error listing boosts for %d/%d: %v", userID, guildID, err)
		common.RespondWithError(s, i, "Unable to retrieve your boosts. Please try again.")
		return
	}

	if len(boosts) == 0 {
		common.RespondWithContent(s, i, "You have no active boosts.")
		return
	}

	var sb strings.Builder
	for _, boost := range boosts {
		if boost.Expiry != nil {
			fmt.Fprintf(&sb, "**%s** — expires %s\n", boost.Effect, common.FormatDiscordTimestamp(*boost.Expiry, "R"))
		} else {
			fmt.Fprintf(&sb, "**%s** — permanent\n", boost.Effect)
		}
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "✨ Active boosts",
		Description: sb.String(),
		Color:       0x57F287,
	}, true)
}
