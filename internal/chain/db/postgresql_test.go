package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/brand-management-backend/internal/chain"
	"go.uber.org/zap"
)

var chainColumns = []string{"id", "chain_name", "is_active", "created_at", "updated_at"}

func setupRepo(t *testing.T) (*repository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	return New(mock, zap.NewNop()), mock
}

func TestRepository_GetAllActive(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, chain_name, is_active, created_at, updated_at FROM chains WHERE is_active=true").
		WillReturnRows(
			pgxmock.NewRows(chainColumns).
				AddRow(int64(1), "Acme Corp", true, now, now).
				AddRow(int64(2), "Globex", true, now, now),
		)

	chains, err := repo.GetAllActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []chain.Chain{
		{ID: 1, Name: "Acme Corp", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Globex", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}, chains)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllActive_Empty(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("FROM chains").WillReturnRows(pgxmock.NewRows(chainColumns))

	chains, err := repo.GetAllActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, chains)
	assert.Empty(t, chains)
}

func TestRepository_GetAllActive_QueryError(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("FROM chains").WillReturnError(errors.New("connection lost"))

	chains, err := repo.GetAllActive(context.Background())
	require.Error(t, err)
	assert.Nil(t, chains)
}

func TestRepository_GetByID(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		mockBehavior  func(mock pgxmock.PgxPoolIface)
		expected      *chain.Chain
		expectedError error
	}{
		{
			name: "inactive chain is still returned",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM chains WHERE id=\\$1").
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows(chainColumns).AddRow(int64(4), "Umbrella", false, now, now))
			},
			expected: &chain.Chain{ID: 4, Name: "Umbrella", IsActive: false, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "not found",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM chains WHERE id=\\$1").
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedError: ErrChainNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			defer mock.Close()

			tt.mockBehavior(mock)

			var id int64 = 99
			if tt.expected != nil {
				id = tt.expected.ID
			}

			c, err := repo.GetByID(context.Background(), id)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Nil(t, c)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expected, c)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
