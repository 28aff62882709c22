package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/FlagBrew/digidex/internal/gui"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/apex/log"
)

// Setup loads the configuration at path. When it is missing, the interactive
// wizard creates it, except in docker mode where that is fatal.
func Setup(ctx context.Context, mode, path string) *models.Config {
	logger := log.FromContext(ctx).WithField("path", path)

	cfg, err := LoadConfig(path)
	if err == nil {
		return cfg
	}

	if !errors.Is(err, os.ErrNotExist) {
		logger.WithError(err).Fatal("failed to read configuration")
	}

	if mode == "docker" {
		logger.Fatal("You're running in docker mode and did not volume mount the config.json, interactive set-up is not available for docker.")
	}

	cfg = models.DefaultConfig()

	wizard := gui.NewWizard(cfg)
	if err := wizard.Start(); err != nil {
		logger.WithError(err).Fatal("failed to start interactive wizard")
	}

	if wizard.Cancelled() {
		logger.Info("setup cancelled, nothing was saved")
		os.Exit(0)
	}

	if err := SetConfig(path, cfg); err != nil {
		logger.WithError(err).Error("failed to save configuration")
	}

	return cfg
}

func SetConfig(path string, cfg *models.Config) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads path and fills in defaults for omitted fields.
func LoadConfig(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}
