// ABOUTME: Process entry point: env loading, logger setup, lifecycle handoff
package main

import (
	"os"

	"github.com/joho/godotenv"

	"definex/bootstrap"
	"definex/utils/logger"
)

func main() {
	// Best-effort: a missing .env just means the environment is already set
	_ = godotenv.Load()

	log := logger.New(logger.LoadConfigFromEnv())

	if err := bootstrap.Run(log); err != nil {
		log.Error("service failed", "error", err)
		os.Exit(1)
	}
}
