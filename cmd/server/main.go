package main

import (
	"context"
	"fmt"

	"github.com/complyra/claimshield/internal/adapter"
	"github.com/complyra/claimshield/internal/config"
	"github.com/complyra/claimshield/internal/handler"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/server"
	"github.com/complyra/claimshield/internal/service"
	"github.com/complyra/claimshield/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("claimshield-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	ocrClient := adapter.NewOCRClient(cfg.OCR, log)
	llmClient := adapter.NewLLMClient(cfg.LLM, log)

	services := service.NewServices(storages, ocrClient, llmClient, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
