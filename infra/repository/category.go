package repository

import (
	"context"
	"errors"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategory returns the GORM-backed category repository.
func NewCategory(db *gorm.DB) repository.Category {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.Category, 0, len(categories))
	for i := range categories {
		result = append(result, mapCategory(&categories[i]))
	}
	return result, nil
}

func (r *categoryRepository) Get(ctx context.Context, id uint) (*domain.Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapCategory(&category), nil
}

func (r *categoryRepository) Create(ctx context.Context, create *dto.CategoryCreate) (*domain.Category, error) {
	category := &Category{Name: create.Name}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return mapCategory(category), nil
}

func (r *categoryRepository) Update(ctx context.Context, id uint, update *dto.CategoryUpdate) error {
	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error
}

func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
