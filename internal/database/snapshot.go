package database

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/FlagBrew/digidex/internal/models"
)

const (
	snapshotTable = "catalog_snapshot"
	colPosition   = "position"
	colName       = "name"
	colLevel      = "level"
	colImg        = "img"

	// Rows per INSERT, well below every dialect's bind-parameter limit.
	insertBatch = 200
)

// SnapshotStore keeps a copy of the last successful upstream fetch, so a
// later start can still show the catalog when the upstream is down. Only the
// raw entries are stored; stats are rolled again on every load.
type SnapshotStore struct {
	drv *entsql.Driver
}

func NewSnapshotStore(drv *entsql.Driver) *SnapshotStore {
	return &SnapshotStore{drv: drv}
}

// Save replaces the stored snapshot with raw.
func (s *SnapshotStore) Save(ctx context.Context, raw []models.RawDigimon) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	b := entsql.Dialect(s.drv.Dialect())

	query, args := b.Delete(snapshotTable).Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	for start := 0; start < len(raw); start += insertBatch {
		end := min(start+insertBatch, len(raw))

		insert := b.Insert(snapshotTable).Columns(colPosition, colName, colLevel, colImg)
		for i := start; i < end; i++ {
			insert.Values(i, raw[i].Name, raw[i].Level, raw[i].Img)
		}

		query, args := insert.Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("writing snapshot rows %d-%d: %w", start, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot in upstream order. An empty result means
// nothing was saved yet.
func (s *SnapshotStore) Load(ctx context.Context) ([]models.RawDigimon, error) {
	b := entsql.Dialect(s.drv.Dialect())
	query, args := b.Select(colName, colLevel, colImg).
		From(b.Table(snapshotTable)).
		OrderBy(colPosition).
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	defer rows.Close()

	var out []models.RawDigimon
	for rows.Next() {
		var r models.RawDigimon
		if err := rows.Scan(&r.Name, &r.Level, &r.Img); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return out, nil
}

func (s *SnapshotStore) Close() error {
	return s.drv.Close()
}
