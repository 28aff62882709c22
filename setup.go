package main

import (
	"context"
	"errors"
	"os"

	"github.com/FlagBrew/digidex/internal/catalog"
	"github.com/FlagBrew/digidex/internal/database"
	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/gui"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/FlagBrew/digidex/internal/source"
	"github.com/FlagBrew/digidex/internal/utils"
	"github.com/apex/log"
)

func setup() (context.Context, context.CancelFunc) {
	cli.Parse()
	logger = cli.Logger

	ctx, cancel := context.WithCancel(context.Background())
	ctx = log.NewContext(ctx, logger)

	if cli.Flags.Print {
		cfg = printConfig(ctx)
	} else {
		cfg = utils.Setup(ctx, cli.Flags.Mode, cli.Flags.Config)
	}

	cat = dex.NewCatalog()
	sessions = dex.NewRegistry()

	if cfg.FancyScreen && !cli.Flags.Print {
		session := sessions.Create()
		app = gui.New(cfg, cat, session)
		cli.Logger = utils.NewLogger(log.InfoLevel, cli.Debug, app.GetLogOutput())
		logger = cli.Logger
		ctx = log.NewContext(ctx, logger)
		logger.WithField("session", session.ID).Info("terminal session is also available over the api")
		go func() {
			if err := app.Start(); err != nil {
				logger.WithError(err).Error("terminal ui stopped")
			}
			cancel()
		}()
	}

	src, err := source.New(source.Config{
		URL:     cfg.Source.URL,
		Timeout: cfg.Source.Timeout.Duration,
	})
	if err != nil {
		logger.WithError(err).Fatal("invalid catalog source")
	}

	enricher := dex.NewEnricher(nil)
	if cfg.Stats.Deterministic {
		enricher = dex.NewDeterministicEnricher()
	}

	// A nil *SnapshotStore must not reach the loader as a non-nil interface.
	var snapshots catalog.Snapshots
	if cfg.Database.Enabled() {
		drv, err := database.New(ctx, &cfg.Database)
		if err != nil {
			logger.WithError(err).WithField("db_type", cfg.Database.DBType).Fatal("failed to open snapshot database")
		}
		if err = database.Migrate(ctx, drv); err != nil {
			logger.WithError(err).Fatal("failed to migrate snapshot database")
		}
		store = database.NewSnapshotStore(drv)
		snapshots = store
	}

	loader = catalog.NewLoader(src, enricher, snapshots)

	return ctx, cancel
}

// printConfig is the configuration for a one-off --print run, which never
// starts the wizard.
func printConfig(ctx context.Context) *models.Config {
	c, err := utils.LoadConfig(cli.Flags.Config)
	if err == nil {
		return c
	}
	if !errors.Is(err, os.ErrNotExist) {
		log.FromContext(ctx).WithError(err).Fatal("failed to read configuration")
	}
	return models.DefaultConfig()
}
