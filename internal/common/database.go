package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/licagency/policy-tracker/gen/ent"
	"github.com/licagency/policy-tracker/internal/repository"
)

// DBResult bundles the initialized client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for in-memory runs
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an
// in-memory SQLite one. The in-memory path also creates the schema, since
// there is no migration step for a database that lives one process.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem {
		return initSQLite(ctx, logger)
	}

	if err := cfg.ValidateForPostgres(); err != nil {
		return nil, err
	}
	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(client, pool, logger)
		},
	}, nil
}

func initSQLite(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	logger.Info("using in-memory SQLite database")
	db, err := sql.Open("sqlite", "file:policytracker?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, WrapError(err, "open sqlite")
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, WrapError(err, "create schema")
	}
	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
