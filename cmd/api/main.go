package main

import (
	"os"

	"github.com/shs-edu/campus-portal/internal/bootstrap"
	"github.com/shs-edu/campus-portal/internal/pkg/logger"
)

func main() {
	srv, err := bootstrap.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
