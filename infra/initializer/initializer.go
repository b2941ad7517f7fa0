// Package initializer constructs the application dependency graph: the
// database connection, the blob store, the repositories, and the services.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/locali/locali/infra"
	infrarepo "github.com/locali/locali/infra/repository"
	infrastorage "github.com/locali/locali/infra/storage"
	"github.com/locali/locali/pkg/app"
	"github.com/locali/locali/pkg/config"
	"github.com/locali/locali/pkg/service"
)

// InitializeApp connects the external stores, migrates the schema, and
// builds every service into an app.App ready for webapi.SetupApp.
func InitializeApp(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*app.App, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	store, err := infrastorage.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to build blob store client: %w", err)
	}

	cities := infrarepo.NewCity(db)
	categories := infrarepo.NewCategory(db)
	users := infrarepo.NewUser(db)
	services := infrarepo.NewService(db)

	assetSvc := service.NewAssetService(users, services, store, cfg.Storage, logger)

	return &app.App{
		Config:          cfg,
		Logger:          logger,
		CityService:     service.NewCityService(cities, services, logger),
		CategoryService: service.NewCategoryService(categories, services, logger),
		UserService:     service.NewUserService(users, assetSvc, logger),
		ServiceService:  service.NewServiceService(services, cities, categories, assetSvc, logger),
		AssetService:    assetSvc,
	}, nil
}
