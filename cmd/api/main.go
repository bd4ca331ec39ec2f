package main

import (
	"os"

	"github.com/ozank/collegium/internal/pkg/logger"
	"github.com/ozank/collegium/internal/server"
)

// @title Collegium API
// @version 1.0
// @description REST API for college administration: students, professors, departments, courses, exams and grades

// @contact.name API Support
// @contact.email support@collegium.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("server execution failed")
		os.Exit(1)
	}

	logger.Info().Msg("application finished gracefully")
}
