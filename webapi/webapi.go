// Package webapi assembles the Fiber application: global middleware, the
// root endpoint, and the per-entity route groups.
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/locali/locali/pkg/app"
	categoryweb "github.com/locali/locali/webapi/category"
	cityweb "github.com/locali/locali/webapi/city"
	"github.com/locali/locali/webapi/common"
	servicesweb "github.com/locali/locali/webapi/servicelisting"
	userweb "github.com/locali/locali/webapi/user"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Code, fiberErr.Message, "")
			}
			return common.ProblemDetailsJSON(
				c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		},
	})

	// All origins, methods, and headers are allowed; the API is public.
	fiberApp.Use(cors.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Uses X-Forwarded-For when behind a proxy, falling back to X-Real-IP
	// and then the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c, fiber.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
		},
	}))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Services directory API",
			"status":  "online",
		})
	})

	cityweb.Routes(fiberApp, a.CityService)
	categoryweb.Routes(fiberApp, a.CategoryService)
	userweb.Routes(fiberApp, a.UserService, a.AssetService)
	servicesweb.Routes(fiberApp, a.ServiceService, a.AssetService)

	return fiberApp
}
