package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/brand-management-backend/internal/brand"
	"go.uber.org/zap"
)

var (
	viewColumns  = []string{"id", "brand_name", "chain_id", "chain_name", "is_active", "created_at", "updated_at"}
	brandColumns = []string{"id", "brand_name", "chain_id", "is_active", "created_at", "updated_at"}

	createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func setupRepo(t *testing.T) (*repository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	return New(mock, zap.NewNop()), mock
}

func sampleView() brand.View {
	return brand.View{
		ID:        1,
		Name:      "Acme Pizza",
		ChainID:   1,
		ChainName: "Acme Corp",
		IsActive:  true,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func viewRows(views ...brand.View) *pgxmock.Rows {
	rows := pgxmock.NewRows(viewColumns)
	for _, v := range views {
		rows.AddRow(v.ID, v.Name, v.ChainID, v.ChainName, v.IsActive, v.CreatedAt, v.UpdatedAt)
	}
	return rows
}

func TestRepository_GetAllActive(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	second := sampleView()
	second.ID = 2
	second.Name = "Acme Burger"

	mock.ExpectQuery("FROM brands b JOIN chains c ON b.chain_id = c.id WHERE b.is_active=true ORDER BY b.id").
		WillReturnRows(viewRows(sampleView(), second))

	views, err := repo.GetAllActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []brand.View{sampleView(), second}, views)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByChainID(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("WHERE b.chain_id=\\$1 AND b.is_active=true").
		WithArgs(int64(2)).
		WillReturnRows(viewRows())

	views, err := repo.GetActiveByChainID(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		defer mock.Close()

		mock.ExpectQuery("WHERE b.id=\\$1 AND b.is_active=true").
			WithArgs(int64(1)).
			WillReturnRows(viewRows(sampleView()))

		view, err := repo.GetActiveByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, sampleView(), *view)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		defer mock.Close()

		mock.ExpectQuery("WHERE b.id=\\$1 AND b.is_active=true").
			WithArgs(int64(5)).
			WillReturnError(pgx.ErrNoRows)

		view, err := repo.GetActiveByID(context.Background(), 5)
		require.ErrorIs(t, err, ErrBrandNotFound)
		assert.Nil(t, view)
	})
}

func TestRepository_LockActiveByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		defer mock.Close()

		mock.ExpectQuery("FROM brands WHERE id=\\$1 AND is_active=true FOR UPDATE").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(brandColumns).AddRow(int64(1), "Acme Pizza", int64(1), true, createdAt, updatedAt))

		b, err := repo.LockActiveByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, &brand.Brand{
			ID:        1,
			Name:      "Acme Pizza",
			ChainID:   1,
			IsActive:  true,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}, b)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		defer mock.Close()

		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(1)).
			WillReturnError(pgx.ErrNoRows)

		b, err := repo.LockActiveByID(context.Background(), 1)
		require.ErrorIs(t, err, ErrBrandNotFound)
		assert.Nil(t, b)
	})
}

func TestRepository_CheckBrandNameIsAvailable(t *testing.T) {
	excluded := int64(7)

	tests := []struct {
		name        string
		excludeID   []int64
		expectedArg *int64
		available   bool
	}{
		{name: "available without exclusion", expectedArg: nil, available: true},
		{name: "taken without exclusion", expectedArg: nil, available: false},
		{name: "available excluding itself", excludeID: []int64{7}, expectedArg: &excluded, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			defer mock.Close()

			mock.ExpectQuery("SELECT NOT EXISTS").
				WithArgs("acme pizza", int64(1), tt.expectedArg).
				WillReturnRows(pgxmock.NewRows([]string{"not_exists"}).AddRow(tt.available))

			available, err := repo.CheckBrandNameIsAvailable(context.Background(), "acme pizza", 1, tt.excludeID...)
			require.NoError(t, err)
			assert.Equal(t, tt.available, available)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	data := brand.Brand{Name: "Acme Pizza", ChainID: 1, IsActive: true}

	tests := []struct {
		name          string
		mockBehavior  func(mock pgxmock.PgxPoolIface)
		expected      *brand.View
		expectedError error
	}{
		{
			name: "success",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO brands").
					WithArgs("Acme Pizza", int64(1), true).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
				mock.ExpectQuery("WHERE b.id=\\$1").
					WithArgs(int64(1)).
					WillReturnRows(viewRows(sampleView()))
			},
			expected: func() *brand.View { v := sampleView(); return &v }(),
		},
		{
			name: "unique violation",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO brands").
					WithArgs("Acme Pizza", int64(1), true).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "brands_chain_id_lower_name_active_key"})
			},
			expectedError: ErrBrandNameTaken,
		},
		{
			name: "foreign key violation",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO brands").
					WithArgs("Acme Pizza", int64(1), true).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedError: ErrChainMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			defer mock.Close()

			tt.mockBehavior(mock)

			view, err := repo.Create(context.Background(), data)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, view)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	data := brand.Brand{ID: 1, Name: "Acme Pizza", ChainID: 2, IsActive: false}

	tests := []struct {
		name          string
		mockBehavior  func(mock pgxmock.PgxPoolIface)
		expectedError error
	}{
		{
			name: "success returns row even when deactivated",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE brands SET brand_name=\\$1, chain_id=\\$2, is_active=\\$3, updated_at=NOW\\(\\) WHERE id=\\$4").
					WithArgs("Acme Pizza", int64(2), false, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))

				v := sampleView()
				v.ChainID = 2
				v.ChainName = "Globex"
				v.IsActive = false
				mock.ExpectQuery("WHERE b.id=\\$1").
					WithArgs(int64(1)).
					WillReturnRows(viewRows(v))
			},
		},
		{
			name: "no rows",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE brands").
					WithArgs("Acme Pizza", int64(2), false, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedError: ErrBrandNotFound,
		},
		{
			name: "unique violation",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE brands").
					WithArgs("Acme Pizza", int64(2), false, int64(1)).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrBrandNameTaken,
		},
		{
			name: "other error is passed through",
			mockBehavior: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE brands").
					WithArgs("Acme Pizza", int64(2), false, int64(1)).
					WillReturnError(errors.New("connection lost"))
			},
			expectedError: errors.New("connection lost"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			defer mock.Close()

			tt.mockBehavior(mock)

			view, err := repo.Update(context.Background(), data)

			if tt.expectedError != nil {
				require.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(2), view.ChainID)
				assert.Equal(t, "Globex", view.ChainName)
				assert.False(t, view.IsActive)
				assert.Equal(t, createdAt, view.CreatedAt)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SoftDelete(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "success", rowsAffected: 1},
		{name: "already inactive", rowsAffected: 0, expectedError: ErrBrandNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			defer mock.Close()

			mock.ExpectExec("UPDATE brands SET is_active=false, updated_at=NOW\\(\\) WHERE id=\\$1 AND is_active=true").
				WithArgs(int64(1)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.rowsAffected))

			err := repo.SoftDelete(context.Background(), 1)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
