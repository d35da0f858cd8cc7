package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	minBet := float64(b.config.MinimumBet)
	minAmount := float64(1)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players in this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "How many players to show (default 10)",
					Required:    false,
				},
			},
		},
		{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		{
			Name:        "work",
			Description: "Work a shift for some coins",
		},
		{
			Name:        "slots",
			Description: "Pull the slot machine",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bet",
					Description: "Amount to bet",
					Required:    true,
					MinValue:    &minBet,
				},
			},
		},
		{
			Name:        "blackjack",
			Description: "Play a round of blackjack",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bet",
					Description: "Amount to bet",
					Required:    true,
					MinValue:    &minBet,
				},
			},
		},
		{
			Name:        "transfer",
			Description: "Send coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Who to send coins to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount to send",
					Required:    true,
					MinValue:    &minAmount,
				},
			},
		},
		{
			Name:        "rob",
			Description: "Rob another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "attempt",
					Description: "Attempt to rob someone",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "target",
							Description: "Who to rob",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show a player's robbery record",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Player to look up (defaults to you)",
							Required:    false,
						},
					},
				},
			},
		},
		{
			Name:        "shop",
			Description: "Browse the item shop",
		},
		{
			Name:        "buy",
			Description: "Buy an item from the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item to buy",
					Required:    true,
				},
			},
		},
		{
			Name:        "use",
			Description: "Use an item from your inventory",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item to use",
					Required:    true,
				},
			},
		},
		{
			Name:        "sell",
			Description: "Sell items back to the shop at half price",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "Item to sell",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "quantity",
					Description: "How many to sell (default 1)",
					Required:    false,
					MinValue:    &minAmount,
				},
			},
		},
		{
			Name:        "inventory",
			Description: "Show your items",
		},
		{
			Name:        "boosts",
			Description: "Show your active boosts",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
