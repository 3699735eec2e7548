package main

import (
	"context"
	"fmt"
	"log"

	"immodok/internal/config"
	"immodok/internal/extract"
	"immodok/internal/handler"
	"immodok/internal/match"
	"immodok/internal/pdftext"
	"immodok/internal/port"
	"immodok/internal/registry"
	"immodok/internal/router"
	"immodok/internal/service"
	localstorage "immodok/internal/storage/local"
	s3storage "immodok/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := buildStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize document store: %w", err)
	}

	objectSource := registry.NewFileObjectSource(cfg.Data.ObjectsFile)
	vendorSource := registry.NewFileVendorSource(cfg.Data.VendorMapFile)

	// Startup probe: a broken registry or vendor map only empties the
	// data at request time, so surface misconfiguration loudly here.
	if _, err := objectSource.LoadObjects(context.Background()); err != nil {
		log.Printf("warning: object registry %s not loadable: %v", cfg.Data.ObjectsFile, err)
	}
	if _, err := vendorSource.LoadVendorAliases(context.Background()); err != nil {
		log.Printf("warning: vendor map %s not loadable: %v", cfg.Data.VendorMapFile, err)
	}

	fields := extract.NewFieldExtractor(extract.Options{
		HeadLines:         cfg.Extract.HeadLines,
		BuildingKeywords:  cfg.Extract.BuildingKeywords,
		BuildingLookahead: cfg.Extract.BuildingLookahead,
	})
	matcher := match.NewMatcher(cfg.Match.Threshold)

	processSvc := service.NewProcessService(
		pdftext.New(), store, objectSource, vendorSource, fields, matcher,
	)

	processH := handler.NewProcessHandler(processSvc, cfg.Storage.MaxFileSizeMB)
	objectsH := handler.NewObjectsHandler(objectSource)
	fileH := handler.NewFileHandler(store)
	healthH := handler.NewHealthHandler(objectSource)

	r := router.Setup(processH, objectsH, fileH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildStore selects the document store provider.
func buildStore(cfg *config.Config) (port.DocumentStore, error) {
	switch cfg.Storage.Provider {
	case "s3":
		return s3storage.NewStore(&cfg.S3)
	default:
		return localstorage.NewStore(cfg.Storage.LocalDir), nil
	}
}
