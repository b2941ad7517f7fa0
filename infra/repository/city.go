package repository

import (
	"context"
	"errors"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
	"gorm.io/gorm"
)

type cityRepository struct {
	db *gorm.DB
}

// NewCity returns the GORM-backed city repository.
func NewCity(db *gorm.DB) repository.City {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context) ([]*domain.City, error) {
	var cities []City
	if err := r.db.WithContext(ctx).Find(&cities).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.City, 0, len(cities))
	for i := range cities {
		result = append(result, mapCity(&cities[i]))
	}
	return result, nil
}

func (r *cityRepository) Get(ctx context.Context, id uint) (*domain.City, error) {
	var city City
	if err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapCity(&city), nil
}

func (r *cityRepository) Create(ctx context.Context, create *dto.CityCreate) (*domain.City, error) {
	city := &City{Name: create.Name, State: create.State}
	if err := r.db.WithContext(ctx).Create(city).Error; err != nil {
		return nil, err
	}
	return mapCity(city), nil
}

func (r *cityRepository) Update(ctx context.Context, id uint, update *dto.CityUpdate) error {
	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.State != nil {
		updates["state"] = *update.State
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&City{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *cityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&City{}, "id = ?", id).Error
}

func (r *cityRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&City{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
