package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xw1nchester/brand-management-backend/internal/apperror"
	"github.com/xw1nchester/brand-management-backend/internal/brand"
	"github.com/xw1nchester/brand-management-backend/internal/brand/db"
	"github.com/xw1nchester/brand-management-backend/internal/chain"
	"github.com/xw1nchester/brand-management-backend/pkg/transactor"
	"go.uber.org/zap"
)

const (
	entityName      = "Brand"
	chainEntityName = "Chain"
)

//go:generate mockgen -destination=mocks/repo/mock.go -package=mockbrandrepo . Repository
type Repository interface {
	GetAllActive(ctx context.Context) ([]brand.View, error)
	GetActiveByChainID(ctx context.Context, chainID int64) ([]brand.View, error)
	GetActiveByID(ctx context.Context, id int64) (*brand.View, error)
	LockActiveByID(ctx context.Context, id int64) (*brand.Brand, error)
	CheckBrandNameIsAvailable(ctx context.Context, name string, chainID int64, excludeID ...int64) (bool, error)
	Create(ctx context.Context, data brand.Brand) (*brand.View, error)
	Update(ctx context.Context, data brand.Brand) (*brand.View, error)
	SoftDelete(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/chain/mock.go -package=mockchainservice . ChainService
type ChainService interface {
	GetByID(ctx context.Context, id int64) (*chain.Chain, error)
}

//go:generate mockgen -destination=mocks/zone/mock.go -package=mockzoneservice . ZoneService
type ZoneService interface {
	HasActiveZones(ctx context.Context, brandID int64) (bool, error)
}

type service struct {
	repository   Repository
	chainService ChainService
	zoneService  ZoneService
	txManager    transactor.Manager
	logger       *zap.Logger
}

func New(
	repository Repository,
	chainService ChainService,
	zoneService ZoneService,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:   repository,
		chainService: chainService,
		zoneService:  zoneService,
		txManager:    txManager,
		logger:       logger,
	}
}

func newDuplicateErr(name, chainName string) *apperror.AppError {
	return apperror.NewConflictErr(
		fmt.Sprintf("Brand '%s' already exists under company '%s'", name, chainName),
	)
}

func newLinkedToZoneErr(name string) *apperror.AppError {
	return apperror.NewConflictErr(
		fmt.Sprintf("Brand '%s' cannot be deleted because it is linked to one or more Zones.", name),
	)
}

func (s *service) GetAllActive(ctx context.Context) ([]brand.View, error) {
	brands, err := s.repository.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching active brands", zap.Error(err))

		return nil, err
	}

	return brands, nil
}

// GetByChain fails with not found when the chain does not exist, active or not.
func (s *service) GetByChain(ctx context.Context, chainID int64) ([]brand.View, error) {
	if _, err := s.chainService.GetByID(ctx, chainID); err != nil {
		return nil, err
	}

	brands, err := s.repository.GetActiveByChainID(ctx, chainID)
	if err != nil {
		s.logger.Error("unexpected error when fetching chain brands", zap.Error(err), zap.Int64("chain_id", chainID))

		return nil, err
	}

	return brands, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*brand.View, error) {
	existingBrand, err := s.repository.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrBrandNotFound) {
			return nil, apperror.NewNotFoundErr(entityName, id)
		}

		s.logger.Error("unexpected error when fetching brand by id", zap.Error(err), zap.Int64("brand_id", id))

		return nil, err
	}

	return existingBrand, nil
}

func (s *service) lockActive(ctx context.Context, id int64) (*brand.Brand, error) {
	existingBrand, err := s.repository.LockActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrBrandNotFound) {
			return nil, apperror.NewNotFoundErr(entityName, id)
		}

		s.logger.Error("unexpected error when locking brand by id", zap.Error(err), zap.Int64("brand_id", id))

		return nil, err
	}

	return existingBrand, nil
}

func (s *service) checkNameIsAvailable(ctx context.Context, name string, c *chain.Chain, excludeID ...int64) error {
	nameIsAvailable, err := s.repository.CheckBrandNameIsAvailable(ctx, name, c.ID, excludeID...)
	if err != nil {
		s.logger.Error("unexpected error when checking brand name availability", zap.Error(err))
		return err
	}

	if !nameIsAvailable {
		return newDuplicateErr(name, c.Name)
	}

	return nil
}

// mapWriteError translates storage level guards that fire when a concurrent
// writer slipped in between the pre-check and the write.
func (s *service) mapWriteError(err error, name string, c *chain.Chain, action string) error {
	switch {
	case errors.Is(err, db.ErrBrandNameTaken):
		return newDuplicateErr(name, c.Name)
	case errors.Is(err, db.ErrChainMissing):
		return apperror.NewNotFoundErr(chainEntityName, c.ID)
	default:
		s.logger.Error("unexpected error when "+action+" brand", zap.Error(err))
		return err
	}
}

// Create always stores an active brand. input.IsActive is ignored.
func (s *service) Create(ctx context.Context, input brand.Input) (*brand.View, error) {
	name := strings.TrimSpace(input.Name)

	var createdBrand *brand.View

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existingChain, err := s.chainService.GetByID(ctx, input.ChainID)
		if err != nil {
			return err
		}

		if err := s.checkNameIsAvailable(ctx, name, existingChain); err != nil {
			return err
		}

		createdBrand, err = s.repository.Create(ctx, brand.Brand{
			Name:     name,
			ChainID:  existingChain.ID,
			IsActive: true,
		})
		if err != nil {
			return s.mapWriteError(err, name, existingChain, "creating")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return createdBrand, nil
}

// Update requires the brand to be active, so an inactive brand cannot be
// reactivated here. An explicit IsActive overwrites the stored flag.
func (s *service) Update(ctx context.Context, id int64, input brand.Input) (*brand.View, error) {
	name := strings.TrimSpace(input.Name)

	var updatedBrand *brand.View

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existingBrand, err := s.lockActive(ctx, id)
		if err != nil {
			return err
		}

		existingChain, err := s.chainService.GetByID(ctx, input.ChainID)
		if err != nil {
			return err
		}

		if err := s.checkNameIsAvailable(ctx, name, existingChain, id); err != nil {
			return err
		}

		data := brand.Brand{
			ID:       id,
			Name:     name,
			ChainID:  existingChain.ID,
			IsActive: existingBrand.IsActive,
		}
		if input.IsActive != nil {
			data.IsActive = *input.IsActive
		}

		updatedBrand, err = s.repository.Update(ctx, data)
		if err != nil {
			if errors.Is(err, db.ErrBrandNotFound) {
				return apperror.NewNotFoundErr(entityName, id)
			}

			return s.mapWriteError(err, name, existingChain, "updating")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updatedBrand, nil
}

// Delete deactivates the brand unless an active zone still references it.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existingBrand, err := s.lockActive(ctx, id)
		if err != nil {
			return err
		}

		linked, err := s.zoneService.HasActiveZones(ctx, id)
		if err != nil {
			return err
		}

		if linked {
			return newLinkedToZoneErr(existingBrand.Name)
		}

		if err := s.repository.SoftDelete(ctx, id); err != nil {
			if errors.Is(err, db.ErrBrandNotFound) {
				return apperror.NewNotFoundErr(entityName, id)
			}

			s.logger.Error("unexpected error when deleting brand", zap.Error(err), zap.Int64("brand_id", id))

			return err
		}

		return nil
	})
}
