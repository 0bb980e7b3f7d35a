package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"floristsim/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger, err := configs.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("Invalid logging configuration: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, os.Stdout, logger)
	if err != nil {
		log.Fatalf("Failed to wire supply chain: %v", err)
	}

	placeOrder, err := cmd.DefaultReferenceOrder().Command()
	if err != nil {
		log.Fatalf("Invalid order: %v", err)
	}

	handler := app.CreatePlaceOrderCommandHandler()
	if err = handler.Handle(context.Background(), placeOrder); err != nil {
		log.Fatalf("Order failed: %v", err)
	}
}

func getConfigs() cmd.Config {
	loadDotEnv()

	return cmd.Config{
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}
}

// loadDotEnv loads .env when present; a missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}
