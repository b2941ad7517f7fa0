package repository

import (
	"context"
	"errors"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUser returns the GORM-backed user repository.
func NewUser(db *gorm.DB) repository.User {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.User, 0, len(users))
	for i := range users {
		result = append(result, mapUser(&users[i]))
	}
	return result, nil
}

func (r *userRepository) Get(ctx context.Context, id uint) (*domain.User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapUser(&user), nil
}

func (r *userRepository) Create(ctx context.Context, create *dto.UserCreate) (*domain.User, error) {
	user := &User{Name: create.Name, Email: create.Email}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return mapUser(user), nil
}

func (r *userRepository) Update(ctx context.Context, id uint, update *dto.UserUpdate) error {
	updates := make(map[string]interface{})
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) SetAvatarURL(ctx context.Context, id uint, url *string) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("avatar_url", url).Error
}
