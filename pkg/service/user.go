package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/repository"
)

// UserService implements user CRUD. Email uniqueness is checked by lookup
// before every create and email update. Deleting a user removes the avatar
// blob best-effort first.
type UserService struct {
	users  repository.User
	assets *AssetService
	logger *slog.Logger
}

// NewUserService builds a UserService.
func NewUserService(
	users repository.User,
	assets *AssetService,
	logger *slog.Logger,
) *UserService {
	return &UserService{users: users, assets: assets, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, create *dto.UserCreate) (*domain.User, error) {
	taken, err := s.users.ExistsByEmail(ctx, create.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}
	user, err := s.users.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, update *dto.UserUpdate) (*domain.User, error) {
	existing, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if update.Email != nil {
		taken, err := s.users.ExistsByEmail(ctx, *update.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email already in use by another user", domain.ErrConflict)
		}
	}
	if update.Name == nil && update.Email == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := s.users.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.users.Get(ctx, id)
}

// Delete removes the user row. An existing avatar blob is removed first,
// best-effort: a blob-store failure is logged and does not block deletion.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	existing, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	s.assets.removeOwnedBlob(ctx, s.assets.avatarBucket, existing.AvatarURL)
	return s.users.Delete(ctx, id)
}
