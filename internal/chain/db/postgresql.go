package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/brand-management-backend/internal/chain"
	"github.com/xw1nchester/brand-management-backend/internal/logging"
	pgclient "github.com/xw1nchester/brand-management-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/brand-management-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

type repository struct {
	client pgclient.Client
	logger *zap.Logger
}

func New(client pgclient.Client, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetAllActive(ctx context.Context) ([]chain.Chain, error) {
	query := `
		SELECT id, chain_name, is_active, created_at, updated_at
		FROM chains
		WHERE is_active=true
		ORDER BY id
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chains := make([]chain.Chain, 0)
	for rows.Next() {
		var c chain.Chain

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.IsActive,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		chains = append(chains, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return chains, nil
}

// GetByID does not filter by is_active: brands may still point at a deactivated chain.
func (r *repository) GetByID(ctx context.Context, id int64) (*chain.Chain, error) {
	query := `
		SELECT id, chain_name, is_active, created_at, updated_at
		FROM chains
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var c chain.Chain
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChainNotFound
		}
		return nil, err
	}

	return &c, nil
}
