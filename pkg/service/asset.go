package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/locali/locali/pkg/config"
	"github.com/locali/locali/pkg/domain"
	"github.com/locali/locali/pkg/repository"
	"github.com/locali/locali/pkg/storage"
)

// AssetService manages the avatar and logo blobs and keeps the owners'
// URL columns paired with blob existence: every blob mutation is followed
// by the matching URL write. Uploading over an existing asset does not
// remove the previous blob; the old object stays behind under its old name.
type AssetService struct {
	users        repository.User
	services     repository.Service
	store        storage.BlobStore
	avatarBucket string
	logoBucket   string
	logger       *slog.Logger
}

// NewAssetService builds an AssetService over the given blob store.
func NewAssetService(
	users repository.User,
	services repository.Service,
	store storage.BlobStore,
	cfg config.StorageConfig,
	logger *slog.Logger,
) *AssetService {
	return &AssetService{
		users:        users,
		services:     services,
		store:        store,
		avatarBucket: cfg.AvatarBucket,
		logoBucket:   cfg.LogoBucket,
		logger:       logger,
	}
}

// UploadUserAvatar stores the file in the avatar bucket and records its
// public URL on the user. Returns the URL.
func (s *AssetService) UploadUserAvatar(
	ctx context.Context,
	userID uint,
	data []byte,
	fileName, contentType string,
) (string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}

	object := objectName("user", userID, fileName)
	if err := s.store.Upload(ctx, s.avatarBucket, object, data, contentType); err != nil {
		s.logger.Error("avatar upload failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	url := s.store.PublicURL(s.avatarBucket, object)
	if err := s.users.SetAvatarURL(ctx, userID, &url); err != nil {
		return "", err
	}
	return url, nil
}

// DeleteUserAvatar removes the user's avatar blob and clears avatar_url.
func (s *AssetService) DeleteUserAvatar(ctx context.Context, userID uint) error {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	if user.AvatarURL == nil {
		return fmt.Errorf("%w: user has no avatar", domain.ErrNoAsset)
	}

	if err := s.store.Remove(ctx, s.avatarBucket, objectFromURL(*user.AvatarURL)); err != nil {
		s.logger.Error("avatar removal failed", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDeleteFailed, err)
	}
	return s.users.SetAvatarURL(ctx, userID, nil)
}

// UploadServiceLogo stores the file in the logo bucket and records its
// public URL on the service. Returns the URL.
func (s *AssetService) UploadServiceLogo(
	ctx context.Context,
	serviceID uint,
	data []byte,
	fileName, contentType string,
) (string, error) {
	service, err := s.services.Get(ctx, serviceID)
	if err != nil {
		return "", err
	}
	if service == nil {
		return "", fmt.Errorf("service %d: %w", serviceID, domain.ErrNotFound)
	}

	object := objectName("service", serviceID, fileName)
	if err := s.store.Upload(ctx, s.logoBucket, object, data, contentType); err != nil {
		s.logger.Error("logo upload failed", "service_id", serviceID, "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	url := s.store.PublicURL(s.logoBucket, object)
	if err := s.services.SetLogoURL(ctx, serviceID, &url); err != nil {
		return "", err
	}
	return url, nil
}

// DeleteServiceLogo removes the service's logo blob and clears logo_url.
func (s *AssetService) DeleteServiceLogo(ctx context.Context, serviceID uint) error {
	service, err := s.services.Get(ctx, serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return fmt.Errorf("service %d: %w", serviceID, domain.ErrNotFound)
	}
	if service.LogoURL == nil {
		return fmt.Errorf("%w: service has no logo", domain.ErrNoAsset)
	}

	if err := s.store.Remove(ctx, s.logoBucket, objectFromURL(*service.LogoURL)); err != nil {
		s.logger.Error("logo removal failed", "service_id", serviceID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDeleteFailed, err)
	}
	return s.services.SetLogoURL(ctx, serviceID, nil)
}

// removeOwnedBlob is the cascading-delete path: when the owning entity is
// being deleted, a blob-store failure must not block the row deletion, so
// the error is logged and discarded here.
func (s *AssetService) removeOwnedBlob(ctx context.Context, bucket string, url *string) {
	if url == nil {
		return
	}
	if err := s.store.Remove(ctx, bucket, objectFromURL(*url)); err != nil {
		s.logger.Warn("best-effort blob removal failed",
			"bucket", bucket, "url", *url, "error", err)
	}
}

// objectName derives a collision-resistant object name of the form
// {owner}_{id}_{uuid}.{ext}. The extension is the last dot-delimited
// segment of the client-supplied filename, taken verbatim; a filename
// without a dot yields the whole filename as extension.
func objectName(owner string, id uint, fileName string) string {
	parts := strings.Split(fileName, ".")
	ext := parts[len(parts)-1]
	return fmt.Sprintf("%s_%d_%s.%s", owner, id, uuid.New().String(), ext)
}

// objectFromURL extracts the object name as the final path segment of a
// stored public URL.
func objectFromURL(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
