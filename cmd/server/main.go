package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/statement-viewer/backend/internal/api"
	"github.com/statement-viewer/backend/internal/config"
	"github.com/statement-viewer/backend/internal/engine"
	"github.com/statement-viewer/backend/internal/storage"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "viewer-api")

	entry.Info("Starting Statement Viewer API Service")

	// 1. Config
	cfg := config.Load()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.LoadFile(cfg, path); err != nil {
			entry.Fatalf("Failed to load config file: %v", err)
		}
	}

	// 2. Storage
	store, err := storage.NewFileStorage(cfg.Storage.DataDir)
	if err != nil {
		entry.Fatalf("Failed to initialize storage: %v", err)
	}

	// 3. Engine
	eng := engine.NewEngine(cfg, entry, store)

	// 4. API Server
	server := api.NewServer(eng, entry)

	entry.Infof("Statement Viewer API ready on %s", cfg.Server.Addr)
	if err := server.Start(cfg.Server.Addr); err != nil {
		entry.Fatal(err)
	}
}
