// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"locker-rental/cmd"
	"locker-rental/internal/wire"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	args := os.Args[1:]

	// The development server has no client-side dependencies to wire.
	if len(args) > 0 && args[0] == "serve" {
		logger.Info("Starting development server",
			zap.String("app", config.App.Name),
			zap.String("port", config.App.ServePort))
		cmd.Serve(config, logger)
		return
	}

	// Wire all client dependencies
	app := wire.Wiring(config, os.Stdout, logger)

	if err := cmd.Run(context.Background(), app, args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
