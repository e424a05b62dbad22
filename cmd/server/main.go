package main

import (
	"fmt"

	"github.com/dudhatpatel/cyberdefender/internal/config"
	handlers "github.com/dudhatpatel/cyberdefender/internal/handler/http"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/server"
	"github.com/dudhatpatel/cyberdefender/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cyberdefender-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := handlers.NewHandler(services, cfg.Transfer.MaxUploadBytes, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
