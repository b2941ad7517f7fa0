// Package fixtures provides in-memory substitutes for the persistence and
// blob-store contracts, used by handler and service tests.
package fixtures

import (
	"context"
	"sync"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
)

// CityRepo is an in-memory repository.City.
type CityRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*domain.City
}

// NewCityRepo returns an empty in-memory city repository.
func NewCityRepo() *CityRepo {
	return &CityRepo{rows: make(map[uint]*domain.City)}
}

func (r *CityRepo) List(ctx context.Context) ([]*domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.City, 0, len(r.rows))
	for i := uint(1); i <= r.seq; i++ {
		if row, ok := r.rows[i]; ok {
			copy := *row
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (r *CityRepo) Get(ctx context.Context, id uint) (*domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copy := *row
	return &copy, nil
}

func (r *CityRepo) Create(ctx context.Context, create *dto.CityCreate) (*domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	row := &domain.City{ID: r.seq, Name: create.Name, State: create.State}
	r.rows[row.ID] = row
	copy := *row
	return &copy, nil
}

func (r *CityRepo) Update(ctx context.Context, id uint, update *dto.CityUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil
	}
	if update.Name != nil {
		row.Name = *update.Name
	}
	if update.State != nil {
		row.State = *update.State
	}
	return nil
}

func (r *CityRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *CityRepo) Exists(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

// CategoryRepo is an in-memory repository.Category.
type CategoryRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*domain.Category
}

// NewCategoryRepo returns an empty in-memory category repository.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{rows: make(map[uint]*domain.Category)}
}

func (r *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.Category, 0, len(r.rows))
	for i := uint(1); i <= r.seq; i++ {
		if row, ok := r.rows[i]; ok {
			copy := *row
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (r *CategoryRepo) Get(ctx context.Context, id uint) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copy := *row
	return &copy, nil
}

func (r *CategoryRepo) Create(ctx context.Context, create *dto.CategoryCreate) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	row := &domain.Category{ID: r.seq, Name: create.Name}
	r.rows[row.ID] = row
	copy := *row
	return &copy, nil
}

func (r *CategoryRepo) Update(ctx context.Context, id uint, update *dto.CategoryUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil
	}
	if update.Name != nil {
		row.Name = *update.Name
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *CategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

// UserRepo is an in-memory repository.User.
type UserRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*domain.User
}

// NewUserRepo returns an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{rows: make(map[uint]*domain.User)}
}

func (r *UserRepo) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.User, 0, len(r.rows))
	for i := uint(1); i <= r.seq; i++ {
		if row, ok := r.rows[i]; ok {
			copy := *row
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (r *UserRepo) Get(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copy := *row
	return &copy, nil
}

func (r *UserRepo) Create(ctx context.Context, create *dto.UserCreate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	row := &domain.User{ID: r.seq, Name: create.Name, Email: create.Email}
	r.rows[row.ID] = row
	copy := *row
	return &copy, nil
}

func (r *UserRepo) Update(ctx context.Context, id uint, update *dto.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil
	}
	if update.Name != nil {
		row.Name = *update.Name
	}
	if update.Email != nil {
		row.Email = *update.Email
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Email == email && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) SetAvatarURL(ctx context.Context, id uint, url *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[id]; ok {
		row.AvatarURL = url
	}
	return nil
}

// ServiceRepo is an in-memory repository.Service. Reads resolve the city
// and category refs through the sibling fakes, like the SQL preloads do.
type ServiceRepo struct {
	mu         sync.Mutex
	seq        uint
	rows       map[uint]*domain.Service
	cities     *CityRepo
	categories *CategoryRepo
}

// NewServiceRepo returns an empty in-memory service repository joined to
// the given city and category fakes.
func NewServiceRepo(cities *CityRepo, categories *CategoryRepo) *ServiceRepo {
	return &ServiceRepo{
		rows:       make(map[uint]*domain.Service),
		cities:     cities,
		categories: categories,
	}
}

func (r *ServiceRepo) joined(row *domain.Service) *domain.Service {
	copy := *row
	if city, _ := r.cities.Get(context.Background(), row.CityID); city != nil {
		copy.City = domain.CityRef{Name: city.Name, State: city.State}
	}
	if category, _ := r.categories.Get(context.Background(), row.CategoryID); category != nil {
		copy.Category = domain.CategoryRef{Name: category.Name}
	}
	return &copy
}

func (r *ServiceRepo) List(ctx context.Context, filter *dto.ServiceFilter) ([]*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.Service, 0, len(r.rows))
	for i := uint(1); i <= r.seq; i++ {
		row, ok := r.rows[i]
		if !ok {
			continue
		}
		if filter != nil {
			if filter.CityID != nil && row.CityID != *filter.CityID {
				continue
			}
			if filter.CategoryID != nil && row.CategoryID != *filter.CategoryID {
				continue
			}
		}
		result = append(result, r.joined(row))
	}
	return result, nil
}

func (r *ServiceRepo) Get(ctx context.Context, id uint) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return r.joined(row), nil
}

func (r *ServiceRepo) Create(ctx context.Context, create *dto.ServiceCreate) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	row := &domain.Service{
		ID:          r.seq,
		Name:        create.Name,
		Description: create.Description,
		CityID:      create.CityID,
		CategoryID:  create.CategoryID,
	}
	r.rows[row.ID] = row
	return r.joined(row), nil
}

func (r *ServiceRepo) Update(ctx context.Context, id uint, update *dto.ServiceUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil
	}
	if update.Name != nil {
		row.Name = *update.Name
	}
	if update.Description != nil {
		row.Description = update.Description
	}
	if update.CityID != nil {
		row.CityID = *update.CityID
	}
	if update.CategoryID != nil {
		row.CategoryID = *update.CategoryID
	}
	return nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *ServiceRepo) CountByCity(ctx context.Context, cityID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, row := range r.rows {
		if row.CityID == cityID {
			count++
		}
	}
	return count, nil
}

func (r *ServiceRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, row := range r.rows {
		if row.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *ServiceRepo) SetLogoURL(ctx context.Context, id uint, url *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[id]; ok {
		row.LogoURL = url
	}
	return nil
}
