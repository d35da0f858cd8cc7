package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/features/balance"
	"megabot/bot/features/economy"
	"megabot/bot/features/gambling"
	"megabot/bot/features/rob"
	"megabot/bot/features/shop"
	"megabot/bot/features/transfer"
	"megabot/events"
	"megabot/service"
)

// Config holds bot configuration
type Config struct {
	Token      string
	GuildID    string
	MinimumBet int64
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	eventBus *events.Bus

	balanceFeature  *balance.Feature
	economyFeature  *economy.Feature
	gamblingFeature *gambling.Feature
	robFeature      *rob.Feature
	shopFeature     *shop.Feature
	transferFeature *transfer.Feature
}

func New(
	config Config,
	accountService service.AccountService,
	rewardsService service.RewardsService,
	gamblingService service.GamblingService,
	transferService service.TransferService,
	robService service.RobService,
	shopService service.ShopService,
	eventBus *events.Bus,
) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:   config,
		session:  dg,
		eventBus: eventBus,

		balanceFeature:  balance.New(accountService),
		economyFeature:  economy.New(rewardsService),
		gamblingFeature: gambling.New(gamblingService),
		robFeature:      rob.New(robService),
		shopFeature:     shop.New(shopService),
		transferFeature: transfer.New(transferService),
	}

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	eventBus.Subscribe(events.EventTypeRobResolved, bot.onRobResolved)

	log.Info("Bot connected and commands registered")
	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance", "leaderboard", "inventory", "boosts":
		b.balanceFeature.HandleCommand(s, i)
	case "daily", "work":
		b.economyFeature.HandleCommand(s, i)
	case "slots", "blackjack":
		b.gamblingFeature.HandleCommand(s, i)
	case "rob":
		b.robFeature.HandleCommand(s, i)
	case "shop", "buy", "use", "sell":
		b.shopFeature.HandleCommand(s, i)
	case "transfer":
		b.transferFeature.HandleCommand(s, i)
	}
}
