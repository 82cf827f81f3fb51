package main

import (
	"log"
	"os"

	"github.com/noah-isme/campus-mis/internal/codec"
	"github.com/noah-isme/campus-mis/internal/menu"
	"github.com/noah-isme/campus-mis/internal/registry"
	"github.com/noah-isme/campus-mis/internal/report"
	"github.com/noah-isme/campus-mis/pkg/config"
	"github.com/noah-isme/campus-mis/pkg/logger"
	"github.com/noah-isme/campus-mis/pkg/prompt"
	"github.com/noah-isme/campus-mis/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	reg := registry.New(logr)
	fileCodec := codec.New(logr)

	store, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}
	exporter := report.NewExportService(store, logr)

	in := prompt.NewReader(os.Stdin, os.Stdout)
	mainMenu := menu.NewMainMenu(reg, fileCodec, exporter, cfg, in, os.Stdout, logr)

	logr.Sugar().Infow("system starting", "env", cfg.Env, "data_file", cfg.Data.FilePath)
	for mainMenu.Show() {
	}
	logr.Info("shutdown")
}
