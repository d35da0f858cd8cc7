package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"megabot/bot"
	"megabot/config"
	"megabot/database"
	"megabot/events"
	"megabot/repository"
	"megabot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting megabot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Shared engine plumbing
	clock := service.SystemClock()
	rng := service.SystemRand(time.Now().UnixNano())
	locker := service.NewAccountLocker()

	// Initialize services
	log.Println("Initializing services...")
	accountService := service.NewAccountService(uowFactory, cfg, clock)
	rewardsService := service.NewRewardsService(uowFactory, cfg, clock, rng, locker)
	gamblingService := service.NewGamblingService(uowFactory, cfg, clock, rng, locker)
	transferService := service.NewTransferService(uowFactory, cfg, locker)
	robService := service.NewRobService(uowFactory, cfg, clock, rng, locker)
	shopService := service.NewShopService(uowFactory, cfg, clock, rng, locker)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:      cfg.DiscordToken,
		GuildID:    cfg.DiscordGuildID,
		MinimumBet: cfg.MinimumBet,
	}
	discordBot, err := bot.New(botConfig, accountService, rewardsService, gamblingService, transferService, robService, shopService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Periodic sweep of expired boost rows; reads already filter them out,
	// this just keeps the table from growing unbounded
	go sweepExpiredBoosts(ctx, db, clock)

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}

func sweepExpiredBoosts(ctx context.Context, db *database.DB, clock service.Clock) {
	repo := repository.NewBoostRepository(db)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.RemoveExpired(ctx, clock.Now()); err != nil {
				log.Printf("Error sweeping expired boosts: %v", err)
			}
		}
	}
}
