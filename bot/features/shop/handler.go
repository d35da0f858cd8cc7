package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/common"
	"megabot/models"
	"megabot/service"
)

func (f *Feature) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var sb strings.Builder
	for _, item := range f.shopService.Catalog() {
		fmt.Fprintf(&sb, "**%s** — %s coins\n%s\n\n", item.Name, common.FormatCoins(item.Price), item.Description)
	}

	common.RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🛒 Shop",
		Description: sb.String(),
		Color:       0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Buy with /buy, activate with /use, sell back at half price with /sell",
		},
	}, false)
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	item, ok := itemOption(i)
	if !ok {
		common.RespondWithError(s, i, "No such item. Check /shop for what's available.")
		return
	}

	result, err := f.shopService.Buy(ctx, userID, guildID, item)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	shopItem, _ := service.CatalogItem(result.Item)
	common.RespondWithContent(s, i, fmt.Sprintf("🛒 You bought a **%s** for **%s coins**. New balance: **%s coins**",
		shopItem.Name, common.FormatCoins(result.Price), common.FormatCoins(result.NewBalance)))
}

func (f *Feature) handleUse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	item, ok := itemOption(i)
	if !ok {
		common.RespondWithError(s, i, "No such item. Check /shop for what's available.")
		return
	}

	result, err := f.shopService.UseItem(ctx, userID, guildID, item)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	if result.Item == models.ItemStockMarketTip {
		if result.Payout >= 0 {
			common.RespondWithContent(s, i, fmt.Sprintf("📈 The tip paid off: **+%s coins**! New balance: **%s coins**",
				common.FormatCoins(result.Payout), common.FormatCoins(result.NewBalance)))
		} else {
			common.RespondWithContent(s, i, fmt.Sprintf("📉 The market turned on you: **-%s coins**. New balance: **%s coins**",
				common.FormatCoins(-result.Payout), common.FormatCoins(result.NewBalance)))
		}
		return
	}

	shopItem, _ := service.CatalogItem(result.Item)
	message := fmt.Sprintf("✨ You used a **%s**: %s is now active", shopItem.Name, result.Effect)
	if result.Expiry != nil {
		message += fmt.Sprintf(" until %s", common.FormatDiscordTimestamp(*result.Expiry, "t"))
	} else {
		message += " permanently"
	}
	common.RespondWithContent(s, i, message+".")
}

func (f *Feature) handleSell(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	item, ok := itemOption(i)
	if !ok {
		common.RespondWithError(s, i, "No such item. Check /shop for what's available.")
		return
	}

	quantity := int64(1)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "quantity" {
			quantity = opt.IntValue()
		}
	}

	result, err := f.shopService.SellItem(ctx, userID, guildID, item, quantity)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	shopItem, _ := service.CatalogItem(result.Item)
	common.RespondWithContent(s, i, fmt.Sprintf("💱 You sold %d × **%s** for **%s coins**. New balance: **%s coins**",
		result.Quantity, shopItem.Name, common.FormatCoins(result.Proceeds), common.FormatCoins(result.NewBalance)))
}

func itemOption(i *discordgo.InteractionCreate) (models.ItemID, bool) {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "item" {
			return service.ResolveItemName(opt.StringValue())
		}
	}
	return "", false
}
