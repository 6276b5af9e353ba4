package service

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockzonerepo . Repository
type Repository interface {
	HasActiveZones(ctx context.Context, brandID int64) (bool, error)
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

// HasActiveZones reports whether any active zone references the brand.
func (s *service) HasActiveZones(ctx context.Context, brandID int64) (bool, error) {
	exists, err := s.repository.HasActiveZones(ctx, brandID)
	if err != nil {
		s.logger.Error("unexpected error when checking active zones of brand", zap.Error(err), zap.Int64("brand_id", brandID))

		return false, err
	}

	return exists, nil
}
