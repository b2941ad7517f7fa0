// Package repository defines the persistence contracts for the directory
// entities. Implementations live in infra/repository; tests substitute the
// in-memory fakes from internal/fixtures.
//
// Get returns (nil, nil) when the id does not resolve; callers translate
// that into domain.ErrNotFound. Update applies only the non-nil fields of
// the DTO and is a no-op when none are set.
package repository

import (
	"context"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
)

// City persists cities.
type City interface {
	List(ctx context.Context) ([]*domain.City, error)
	Get(ctx context.Context, id uint) (*domain.City, error)
	Create(ctx context.Context, create *dto.CityCreate) (*domain.City, error)
	Update(ctx context.Context, id uint, update *dto.CityUpdate) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// Category persists categories.
type Category interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id uint) (*domain.Category, error)
	Create(ctx context.Context, create *dto.CategoryCreate) (*domain.Category, error)
	Update(ctx context.Context, id uint, update *dto.CategoryUpdate) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// User persists users. SetAvatarURL is reserved for the asset service, which
// keeps avatar_url paired with blob existence.
type User interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Create(ctx context.Context, create *dto.UserCreate) (*domain.User, error)
	Update(ctx context.Context, id uint, update *dto.UserUpdate) error
	Delete(ctx context.Context, id uint) error
	// ExistsByEmail reports whether another user (id != excludeID) holds the
	// email. Pass excludeID 0 to match any user.
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	SetAvatarURL(ctx context.Context, id uint, url *string) error
}

// Service persists service listings. Reads carry the referenced city and
// category. SetLogoURL is reserved for the asset service.
type Service interface {
	List(ctx context.Context, filter *dto.ServiceFilter) ([]*domain.Service, error)
	Get(ctx context.Context, id uint) (*domain.Service, error)
	Create(ctx context.Context, create *dto.ServiceCreate) (*domain.Service, error)
	Update(ctx context.Context, id uint, update *dto.ServiceUpdate) error
	Delete(ctx context.Context, id uint) error
	CountByCity(ctx context.Context, cityID uint) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	SetLogoURL(ctx context.Context, id uint, url *string) error
}
