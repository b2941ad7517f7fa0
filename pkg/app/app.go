// Package app groups the constructed services handed to the HTTP layer.
package app

import (
	"log/slog"

	"github.com/locali/locali/pkg/config"
	"github.com/locali/locali/pkg/service"
)

// App carries every dependency the web layer needs. It is built once at
// startup (or per test) and injected; there is no package-level state.
type App struct {
	Config          *config.AppConfig
	Logger          *slog.Logger
	CityService     *service.CityService
	CategoryService *service.CategoryService
	UserService     *service.UserService
	ServiceService  *service.ServiceService
	AssetService    *service.AssetService
}
