package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
)

// CategoryService implements category CRUD. Deletion is blocked while any
// service references the category.
type CategoryService struct {
	categories repository.Category
	services   repository.Service
	logger     *slog.Logger
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(
	categories repository.Category,
	services repository.Service,
	logger *slog.Logger,
) *CategoryService {
	return &CategoryService{categories: categories, services: services, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*domain.Category, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, create *dto.CategoryCreate) (*domain.Category, error) {
	category, err := s.categories.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create category", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, update *dto.CategoryUpdate) (*domain.Category, error) {
	existing, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	if update.Name == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := s.categories.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.categories.Get(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	existing, err := s.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	inUse, err := s.services.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: category is in use by services", domain.ErrConflict)
	}
	return s.categories.Delete(ctx, id)
}
