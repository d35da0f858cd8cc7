package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Economy configuration
	StartingBalance int64
	DailyReward     int64
	WorkRewardMin   int64
	WorkRewardMax   int64
	MinimumBet      int64

	// Cooldowns
	DailyCooldown time.Duration
	WorkCooldown  time.Duration
	RobCooldown   time.Duration

	// Rob configuration
	MinRobberBalance   int64
	MinVictimBalance   int64
	RobFineMin         int64
	RobFineMax         int64
	GuardDogPenaltyMin int64
	GuardDogPenaltyMax int64

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Economy settings with defaults
		StartingBalance: 1000,
		DailyReward:     100,
		WorkRewardMin:   50,
		WorkRewardMax:   200,
		MinimumBet:      100,

		DailyCooldown: 24 * time.Hour,
		WorkCooldown:  time.Hour,
		RobCooldown:   2 * time.Hour,

		MinRobberBalance:   500,
		MinVictimBalance:   100,
		RobFineMin:         50,
		RobFineMax:         200,
		GuardDogPenaltyMin: 100,
		GuardDogPenaltyMax: 300,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if reward := os.Getenv("DAILY_REWARD"); reward != "" {
		if parsedReward, err := strconv.ParseInt(reward, 10, 64); err == nil {
			config.DailyReward = parsedReward
		}
	}
	if min := os.Getenv("WORK_REWARD_MIN"); min != "" {
		if parsedMin, err := strconv.ParseInt(min, 10, 64); err == nil {
			config.WorkRewardMin = parsedMin
		}
	}
	if max := os.Getenv("WORK_REWARD_MAX"); max != "" {
		if parsedMax, err := strconv.ParseInt(max, 10, 64); err == nil {
			config.WorkRewardMax = parsedMax
		}
	}
	if bet := os.Getenv("MINIMUM_BET"); bet != "" {
		if parsedBet, err := strconv.ParseInt(bet, 10, 64); err == nil {
			config.MinimumBet = parsedBet
		}
	}

	if config.WorkRewardMax < config.WorkRewardMin {
		return nil, fmt.Errorf("WORK_REWARD_MAX must be >= WORK_REWARD_MIN")
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
