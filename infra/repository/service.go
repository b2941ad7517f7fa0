package repository

import (
	"context"
	"errors"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewService returns the GORM-backed service repository.
func NewService(db *gorm.DB) repository.Service {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) List(ctx context.Context, filter *dto.ServiceFilter) ([]*domain.Service, error) {
	query := r.db.WithContext(ctx).
		Preload("City").
		Preload("Category")
	if filter != nil {
		if filter.CityID != nil {
			query = query.Where("city_id = ?", *filter.CityID)
		}
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}
	}
	var services []Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.Service, 0, len(services))
	for i := range services {
		result = append(result, mapService(&services[i]))
	}
	return result, nil
}

func (r *serviceRepository) Get(ctx context.Context, id uint) (*domain.Service, error) {
	var service Service
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Category").
		First(&service, "services.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapService(&service), nil
}

func (r *serviceRepository) Create(ctx context.Context, create *dto.ServiceCreate) (*domain.Service, error) {
	service := &Service{
		Name:        create.Name,
		Description: create.Description,
		CityID:      create.CityID,
		CategoryID:  create.CategoryID,
	}
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, service.ID)
}

func (r *serviceRepository) Update(ctx context.Context, id uint, update *dto.ServiceUpdate) error {
	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.CityID != nil {
		updates["city_id"] = *update.CityID
	}
	if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Service{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Service{}, "id = ?", id).Error
}

func (r *serviceRepository) CountByCity(ctx context.Context, cityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Service{}).
		Where("city_id = ?", cityID).
		Count(&count).Error
	return count, err
}

func (r *serviceRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Service{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *serviceRepository) SetLogoURL(ctx context.Context, id uint, url *string) error {
	return r.db.WithContext(ctx).Model(&Service{}).
		Where("id = ?", id).
		Update("logo_url", url).Error
}
