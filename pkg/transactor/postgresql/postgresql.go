package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

type pgManager struct {
	db      txBeginner
	options pgx.TxOptions
}

func NewPgManager(db txBeginner, options ...pgx.TxOptions) *pgManager {
	m := &pgManager{db: db}
	if len(options) > 0 {
		m.options = options[0]
	}
	return m
}

// WithinTransaction runs fn in a transaction stored in the context.
// Nested calls reuse the outer transaction.
func (m *pgManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, m.options)
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, txKey{}, tx)

	err = fn(ctx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit(ctx)
}

func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}
