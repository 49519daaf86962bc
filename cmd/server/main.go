// Command server runs the HTTP API.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file and a YAML file pointed at by CONFIG_PATH.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tradescribe/backend/internal/app"
)

func main() {
	// Missing .env is fine; real deployments set env directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("application error: %v", err)
		os.Exit(1)
	}
}
