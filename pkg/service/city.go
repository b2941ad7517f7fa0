// Package service holds the business logic of the directory: entity CRUD
// with referential-integrity checks, and the asset lifecycle for avatars
// and logos. The existence and reference checks here are advisory reads,
// not store constraints; concurrent writers can interleave between a check
// and the following write. That mirrors the store's lack of constraints and
// is accepted.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
)

// CityService implements city CRUD. Deletion is blocked while any service
// references the city.
type CityService struct {
	cities   repository.City
	services repository.Service
	logger   *slog.Logger
}

// NewCityService builds a CityService.
func NewCityService(
	cities repository.City,
	services repository.Service,
	logger *slog.Logger,
) *CityService {
	return &CityService{cities: cities, services: services, logger: logger}
}

func (s *CityService) List(ctx context.Context) ([]*domain.City, error) {
	return s.cities.List(ctx)
}

func (s *CityService) Get(ctx context.Context, id uint) (*domain.City, error) {
	city, err := s.cities.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, fmt.Errorf("city %d: %w", id, domain.ErrNotFound)
	}
	return city, nil
}

func (s *CityService) Create(ctx context.Context, create *dto.CityCreate) (*domain.City, error) {
	city, err := s.cities.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create city", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}
	return city, nil
}

func (s *CityService) Update(ctx context.Context, id uint, update *dto.CityUpdate) (*domain.City, error) {
	existing, err := s.cities.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("city %d: %w", id, domain.ErrNotFound)
	}
	if update.Name == nil && update.State == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := s.cities.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.cities.Get(ctx, id)
}

func (s *CityService) Delete(ctx context.Context, id uint) error {
	existing, err := s.cities.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("city %d: %w", id, domain.ErrNotFound)
	}
	inUse, err := s.services.CountByCity(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: city is in use by services", domain.ErrConflict)
	}
	return s.cities.Delete(ctx, id)
}
