package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/FlagBrew/digidex/internal/models"
	"github.com/apex/log"
)

// New opens the snapshot database described by cfg.
func New(ctx context.Context, cfg *models.DatabaseConfig) (*entsql.Driver, error) {
	logger := log.FromContext(ctx).WithField("db_type", cfg.DBType)

	switch cfg.DBType {
	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("parsing connection string: %w", err)
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		logger.Debug("opened postgres pool")
		return entsql.OpenDB(dialect.Postgres, stdlib.OpenDBFromPool(pool)), nil
	case "mysql":
		db, err := sql.Open(dialect.MySQL, cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("connecting to mysql: %w", err)
		}
		logger.Debug("opened mysql connection")
		return entsql.OpenDB(dialect.MySQL, db), nil
	case "sqlite":
		db, err := sql.Open(cfg.DBType, cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("connecting to sqlite: %w", err)
		}
		logger.Debug("opened sqlite database")
		return entsql.OpenDB(dialect.SQLite, db), nil
	case "":
		return nil, errors.New("no database configured")
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DBType)
	}
}

// Migrate creates the snapshot table if it does not exist yet.
func Migrate(ctx context.Context, drv *entsql.Driver) error {
	logger := log.FromContext(ctx)
	logger.Info("initiating database schema migration")

	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("preparing migration: %w", err)
	}

	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("creating %s: %w", snapshotTable, err)
	}

	logger.Info("database schema migration complete")
	return nil
}
