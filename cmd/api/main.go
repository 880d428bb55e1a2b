package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emrek/campushub/internal/pkg/logger"
	"github.com/emrek/campushub/internal/server"
)

func main() {
	// Optional .env for local development; real deployments set env directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
