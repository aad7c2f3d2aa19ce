package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api"
	"questbuilder/internal/config"
	"questbuilder/internal/storage/sqlite"
	"questbuilder/internal/utils/logger"
)

func main() {
	cfg := config.NewConfig()
	log := logger.New(cfg.Env)

	storage, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	mux := api.New(storage, cfg, log)

	log.Info("server starting",
		slog.String("address", cfg.Server.RunAddress),
		slog.String("env", cfg.Env),
	)
	if err := http.ListenAndServe(cfg.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
