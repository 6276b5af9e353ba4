package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/brand-management-backend/internal/config"
)

// Client is the subset of *pgxpool.Pool the repositories depend on.
type Client interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

func DSN(pc config.PostgreSQL) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", pc.Username, pc.Password, pc.Host, pc.Port, pc.Database)
}

func NewClient(ctx context.Context, pc config.PostgreSQL) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(pc))
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %v", err)
	}

	if pc.MaxConns > 0 {
		poolConfig.MaxConns = pc.MaxConns
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %v", err)
	}

	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %v", err)
	}

	return dbpool, nil
}
