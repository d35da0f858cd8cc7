package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"megabot/cmd"
	"megabot/database"
)

func main() {
	// Handle migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrationCommand(os.Args[2:]); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		return
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")
		cancel()
	}()

	// Run the application
	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runMigrationCommand(args []string) error {
	if len(args) == 0 {
		return database.MigrateUp()
	}

	switch args[0] {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(args) > 1 {
			steps = args[1]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		log.Printf("Unknown migration command: %s", args[0])
		log.Println("Usage: megabot migrate [up|down [steps]|status]")
		os.Exit(1)
	}
	return nil
}
