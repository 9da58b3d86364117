package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-sync/internal/adapter"
	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("healthsync").WithRunID()
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fitness := adapter.NewGarminAdapter(cfg.Garmin, cfg.HTTP, log)
	notes := adapter.NewNotionAdapter(cfg.Notion, cfg.HTTP, log)
	sync := service.NewHealthSyncService(fitness, notes, cfg.Notion, log)

	report, err := sync.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("sync run error")
	}

	log.Info().
		Str("date", report.Date).
		Str("heart_rate", string(report.HeartRate.Status)).
		Str("respiration", string(report.Respiration.Status)).
		Msg("sync finished")
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
