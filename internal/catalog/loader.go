// Package catalog runs the one-shot load of the Digimon catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/FlagBrew/digidex/internal/source"
	"github.com/apex/log"
)

// Snapshots stores the last good upstream response.
type Snapshots interface {
	Save(ctx context.Context, raw []models.RawDigimon) error
	Load(ctx context.Context) ([]models.RawDigimon, error)
}

type Loader struct {
	source    source.Client
	enricher  *dex.Enricher
	snapshots Snapshots
}

// NewLoader wires a loader. snapshots may be nil.
func NewLoader(src source.Client, enricher *dex.Enricher, snapshots Snapshots) *Loader {
	return &Loader{
		source:    src,
		enricher:  enricher,
		snapshots: snapshots,
	}
}

// Load fetches the catalog once, enriches it and finishes cat. On failure cat
// is finished empty and the error is returned for the caller to log; there is
// no retry.
func (l *Loader) Load(ctx context.Context, cat *dex.Catalog) error {
	logger := log.FromContext(ctx)

	raw, err := l.fetch(ctx)
	if err != nil {
		cat.Finish(nil)
		return err
	}

	entries := l.enricher.Enrich(raw)
	cat.Finish(entries)
	logger.WithField("count", len(entries)).Info("catalog loaded")

	return nil
}

func (l *Loader) fetch(ctx context.Context) ([]models.RawDigimon, error) {
	logger := log.FromContext(ctx)

	raw, err := l.source.ListDigimon(ctx)
	if err == nil {
		// An empty response does not overwrite a good snapshot.
		if l.snapshots != nil && len(raw) > 0 {
			if serr := l.snapshots.Save(ctx, raw); serr != nil {
				logger.WithError(serr).Warn("failed to store catalog snapshot")
			}
		}
		return raw, nil
	}

	if l.snapshots == nil {
		return nil, err
	}

	logger.WithError(err).Warn("upstream fetch failed, trying stored snapshot")

	saved, serr := l.snapshots.Load(ctx)
	if serr != nil {
		return nil, errors.Join(err, serr)
	}
	if len(saved) == 0 {
		return nil, err
	}

	logger.WithField("count", len(saved)).Warn("using stored catalog snapshot")
	return saved, nil
}
