// Package repository implements the persistence contracts from
// pkg/repository on top of GORM and Postgres.
package repository

import (
	"time"

	"github.com/locali/locali/pkg/domain"
)

// City is the cities table row.
type City struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:255"`
	State     string `gorm:"not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (City) TableName() string { return "cities" }

// Category is the categories table row.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }

// User is the users table row. Email uniqueness is enforced by the service
// layer lookup, not a store constraint, matching the observed behavior of
// the system this replaces.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:255"`
	Email     string `gorm:"not null;size:255"`
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// Service is the services table row. City and Category are preloaded on
// reads so every service carries its referenced names.
type Service struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;size:255"`
	Description *string
	CityID      uint `gorm:"not null;index"`
	CategoryID  uint `gorm:"not null;index"`
	LogoURL     *string
	City        City
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Service) TableName() string { return "services" }

func mapCity(m *City) *domain.City {
	return &domain.City{ID: m.ID, Name: m.Name, State: m.State}
}

func mapCategory(m *Category) *domain.Category {
	return &domain.Category{ID: m.ID, Name: m.Name}
}

func mapUser(m *User) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		AvatarURL: m.AvatarURL,
	}
}

func mapService(m *Service) *domain.Service {
	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CityID:      m.CityID,
		CategoryID:  m.CategoryID,
		LogoURL:     m.LogoURL,
		City:        domain.CityRef{Name: m.City.Name, State: m.City.State},
		Category:    domain.CategoryRef{Name: m.Category.Name},
	}
}
