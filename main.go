package main

import (
	"context"
	"os"

	"github.com/FlagBrew/digidex/internal/catalog"
	"github.com/FlagBrew/digidex/internal/database"
	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/gui"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/FlagBrew/digidex/internal/report"
	"github.com/apex/log"
	"github.com/lrstanley/chix"
	"github.com/lrstanley/clix"
	"golang.org/x/sync/errgroup"
)

var (
	cli      = &clix.CLI[models.Flags]{}
	logger   log.Interface
	cfg      *models.Config
	app      *gui.Gui
	store    *database.SnapshotStore
	cat      *dex.Catalog
	loader   *catalog.Loader
	sessions *dex.Registry
)

func main() {
	ctx, cancel := setup()
	defer cancel()

	if cli.Flags.Print {
		code := printCatalog(ctx)
		closeStore()
		os.Exit(code)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := loader.Load(ctx, cat); err != nil {
			logger.WithError(err).Error("failed to load catalog, serving an empty one")
		}
		return nil
	})
	g.Go(func() error {
		logger.Infof("Starting HTTP server on %s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port)
		return chix.RunContext(ctx, httpServer(ctx))
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("http server stopped")
	}

	closeStore()
}

// printCatalog loads the catalog once and prints it filtered by --search and
// --level. It returns the process exit code.
func printCatalog(ctx context.Context) int {
	if err := loader.Load(ctx, cat); err != nil {
		logger.WithError(err).Error("failed to load catalog")
		return 1
	}

	filter := dex.Filter{
		Search: cli.Flags.Search,
		Level:  dex.NormalizeLevel(cli.Flags.Level),
	}

	if err := report.Render(os.Stdout, filter.Apply(cat.Entries())); err != nil {
		logger.WithError(err).Error("failed to print catalog")
		return 1
	}
	return 0
}

func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.WithError(err).Warn("failed to close snapshot database")
	}
}
