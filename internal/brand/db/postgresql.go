package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xw1nchester/brand-management-backend/internal/brand"
	"github.com/xw1nchester/brand-management-backend/internal/logging"
	pgclient "github.com/xw1nchester/brand-management-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/brand-management-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const selectView = `
	SELECT
		b.id,
		b.brand_name,
		b.chain_id,
		c.chain_name,
		b.is_active,
		b.created_at,
		b.updated_at
	FROM brands b
	JOIN chains c ON b.chain_id = c.id
`

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

func (r *repository) GetAllActive(ctx context.Context) ([]brand.View, error) {
	query := selectView + `
		WHERE b.is_active=true
		ORDER BY b.id
	`

	return r.queryViews(ctx, query)
}

func (r *repository) GetActiveByChainID(ctx context.Context, chainID int64) ([]brand.View, error) {
	query := selectView + `
		WHERE b.chain_id=$1 AND b.is_active=true
		ORDER BY b.id
	`

	return r.queryViews(ctx, query, chainID)
}

func (r *repository) GetActiveByID(ctx context.Context, id int64) (*brand.View, error) {
	query := selectView + `
		WHERE b.id=$1 AND b.is_active=true
	`

	return r.queryView(ctx, query, id)
}

// LockActiveByID reads an active brand and holds a row lock on it until the
// surrounding transaction ends. Zone rows referencing the brand cannot be
// inserted while the lock is held.
func (r *repository) LockActiveByID(ctx context.Context, id int64) (*brand.Brand, error) {
	query := `
		SELECT id, brand_name, chain_id, is_active, created_at, updated_at
		FROM brands
		WHERE id=$1 AND is_active=true
		FOR UPDATE
	`

	logging.LogSQLQuery(r.logger, query, id)

	var b brand.Brand
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.ChainID,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	return &b, nil
}

// CheckBrandNameIsAvailable compares names case-insensitively among active
// brands of the chain. Inactive brands never block a name.
func (r *repository) CheckBrandNameIsAvailable(
	ctx context.Context,
	name string,
	chainID int64,
	excludeID ...int64,
) (bool, error) {
	query := `
		SELECT NOT EXISTS (
			SELECT 1 FROM brands
			WHERE LOWER(brand_name)=LOWER($1)
				AND chain_id=$2
				AND is_active=true
				AND ($3::bigint IS NULL OR id<>$3)
		)
	`

	var exclude *int64
	if len(excludeID) > 0 {
		exclude = &excludeID[0]
	}

	logging.LogSQLQuery(r.logger, query, name, chainID, exclude)

	var isAvailable bool
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, name, chainID, exclude).Scan(&isAvailable); err != nil {
		return false, err
	}

	return isAvailable, nil
}

func (r *repository) Create(ctx context.Context, data brand.Brand) (*brand.View, error) {
	query := `
		INSERT INTO brands (brand_name, chain_id, is_active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query, data.Name, data.ChainID, data.IsActive)

	var id int64
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Name,
		data.ChainID,
		data.IsActive,
	).Scan(&id); err != nil {
		return nil, mapWriteError(err)
	}

	return r.getByID(ctx, id)
}

// Update never touches created_at.
func (r *repository) Update(ctx context.Context, data brand.Brand) (*brand.View, error) {
	query := `
		UPDATE brands
		SET brand_name=$1, chain_id=$2, is_active=$3, updated_at=NOW()
		WHERE id=$4
	`

	logging.LogSQLQuery(r.logger, query, data.Name, data.ChainID, data.IsActive, data.ID)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.Name,
		data.ChainID,
		data.IsActive,
		data.ID,
	)
	if err != nil {
		return nil, mapWriteError(err)
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrBrandNotFound
	}

	return r.getByID(ctx, data.ID)
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE brands
		SET is_active=false, updated_at=NOW()
		WHERE id=$1 AND is_active=true
	`

	logging.LogSQLQuery(r.logger, query, id)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBrandNotFound
	}

	return nil
}

// getByID is not filtered by is_active: an update may have just deactivated the row.
func (r *repository) getByID(ctx context.Context, id int64) (*brand.View, error) {
	query := selectView + `
		WHERE b.id=$1
	`

	return r.queryView(ctx, query, id)
}

func (r *repository) queryView(ctx context.Context, query string, args ...any) (*brand.View, error) {
	logging.LogSQLQuery(r.logger, query, args...)

	var view brand.View
	if err := scanView(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, args...), &view); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	return &view, nil
}

func (r *repository) queryViews(ctx context.Context, query string, args ...any) ([]brand.View, error) {
	logging.LogSQLQuery(r.logger, query, args...)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]brand.View, 0)
	for rows.Next() {
		var view brand.View

		if err := scanView(rows, &view); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return views, nil
}

func scanView(row pgx.Row, view *brand.View) error {
	return row.Scan(
		&view.ID,
		&view.Name,
		&view.ChainID,
		&view.ChainName,
		&view.IsActive,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		return ErrBrandNameTaken
	case foreignKeyViolationCode:
		return ErrChainMissing
	default:
		return err
	}
}
