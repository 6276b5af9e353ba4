package db

import (
	"context"

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

func (r *repository) HasActiveZones(ctx context.Context, brandID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM zones
			WHERE brand_id=$1 AND is_active=true
		)
	`

	logging.LogSQLQuery(r.logger, query, brandID)

	var exists bool
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, brandID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
