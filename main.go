package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/wordrecall/internal/bot"
	"github.com/example/wordrecall/internal/database"
	"github.com/example/wordrecall/internal/scheduler"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	b, err := bot.New()
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sched := scheduler.New(b)
	b.AttachScheduler(sched)
	sched.Start()
	defer sched.Stop()

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()
		b.Stop()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Printf("Bot error: %v", err)
	}
	log.Println("Bot stopped successfully")
}
