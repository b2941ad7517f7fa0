package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
)

// ServiceService implements CRUD for service listings. Every write that
// carries a city_id or category_id is validated against the referenced
// table first. Deleting a service removes the logo blob best-effort.
type ServiceService struct {
	services   repository.Service
	cities     repository.City
	categories repository.Category
	assets     *AssetService
	logger     *slog.Logger
}

// NewServiceService builds a ServiceService.
func NewServiceService(
	services repository.Service,
	cities repository.City,
	categories repository.Category,
	assets *AssetService,
	logger *slog.Logger,
) *ServiceService {
	return &ServiceService{
		services:   services,
		cities:     cities,
		categories: categories,
		assets:     assets,
		logger:     logger,
	}
}

func (s *ServiceService) List(ctx context.Context, filter *dto.ServiceFilter) ([]*domain.Service, error) {
	return s.services.List(ctx, filter)
}

func (s *ServiceService) Get(ctx context.Context, id uint) (*domain.Service, error) {
	service, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("service %d: %w", id, domain.ErrNotFound)
	}
	return service, nil
}

func (s *ServiceService) Create(ctx context.Context, create *dto.ServiceCreate) (*domain.Service, error) {
	if err := s.checkReferences(ctx, &create.CityID, &create.CategoryID); err != nil {
		return nil, err
	}
	service, err := s.services.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create service", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}
	return service, nil
}

func (s *ServiceService) Update(ctx context.Context, id uint, update *dto.ServiceUpdate) (*domain.Service, error) {
	existing, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("service %d: %w", id, domain.ErrNotFound)
	}
	if err := s.checkReferences(ctx, update.CityID, update.CategoryID); err != nil {
		return nil, err
	}
	if update.Name == nil && update.Description == nil &&
		update.CityID == nil && update.CategoryID == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := s.services.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.services.Get(ctx, id)
}

// Delete removes the service row. An existing logo blob is removed first,
// best-effort: a blob-store failure is logged and does not block deletion.
func (s *ServiceService) Delete(ctx context.Context, id uint) error {
	existing, err := s.services.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("service %d: %w", id, domain.ErrNotFound)
	}
	s.assets.removeOwnedBlob(ctx, s.assets.logoBucket, existing.LogoURL)
	return s.services.Delete(ctx, id)
}

// checkReferences validates the supplied foreign keys. Nil fields are
// skipped, so partial updates only validate what they change.
func (s *ServiceService) checkReferences(ctx context.Context, cityID, categoryID *uint) error {
	if cityID != nil {
		found, err := s.cities.Exists(ctx, *cityID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: city %d not found", domain.ErrInvalidReference, *cityID)
		}
	}
	if categoryID != nil {
		found, err := s.categories.Exists(ctx, *categoryID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: category %d not found", domain.ErrInvalidReference, *categoryID)
		}
	}
	return nil
}
