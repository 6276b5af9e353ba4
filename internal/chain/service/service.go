package service

import (
	"context"
	"errors"

	"github.com/xw1nchester/brand-management-backend/internal/apperror"
	"github.com/xw1nchester/brand-management-backend/internal/chain"
	"github.com/xw1nchester/brand-management-backend/internal/chain/db"
	"go.uber.org/zap"
)

const entityName = "Chain"

//go:generate mockgen -destination=mocks/mock.go -package=mockchainrepo . Repository
type Repository interface {
	GetAllActive(ctx context.Context) ([]chain.Chain, error)
	GetByID(ctx context.Context, id int64) (*chain.Chain, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(
	repository Repository,
	logger *zap.Logger,
) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetAllActive(ctx context.Context) ([]chain.Chain, error) {
	chains, err := s.repository.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching active chains", zap.Error(err))

		return nil, err
	}

	return chains, nil
}

// GetByID resolves a chain regardless of its active flag.
func (s *service) GetByID(ctx context.Context, id int64) (*chain.Chain, error) {
	existingChain, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrChainNotFound) {
			return nil, apperror.NewNotFoundErr(entityName, id)
		}

		s.logger.Error("unexpected error when fetching chain by id", zap.Error(err), zap.Int64("chain_id", id))

		return nil, err
	}

	return existingChain, nil
}
