package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/rogerio-castellano/inventory-manager/internal/catalog"
	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/db"
	"github.com/rogerio-castellano/inventory-manager/internal/logging"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/rogerio-castellano/inventory-manager/internal/shell"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "inventory:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready")

	store := repo.NewPostgresProductRepository(database)
	svc := catalog.NewService(store, log)

	if err := seed(svc, cfg.ImportFile, log); err != nil {
		return err
	}

	return shell.New(os.Stdin, os.Stdout, svc, store, cfg.BackupFile, log).Run()
}

// seed bulk-imports the startup CSV. A missing file is not an error.
func seed(svc *catalog.Service, path string, log *slog.Logger) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("seed file not found, skipping import", "file", path)
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	sum, err := svc.ImportCSV(f)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	log.Info("seed import complete", "file", path, "inserted", sum.Inserted, "skipped", sum.Skipped)
	return nil
}
