// Package city exposes the /cities endpoints.
package city

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/service"
	"github.com/locali/locali/webapi/common"
)

// Routes registers the city endpoints.
func Routes(app *fiber.App, svc *service.CityService) {
	app.Get("/cities", List(svc))
	app.Get("/cities/:id", Get(svc))
	app.Post("/cities", Create(svc))
	app.Put("/cities/:id", Update(svc))
	app.Delete("/cities/:id", Delete(svc))
}

// List returns all cities.
func List(svc *service.CityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cities, err := svc.List(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list cities", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cities found", cities)
	}
}

// Get returns a single city by id.
func Get(svc *service.CityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		city, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "City not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "City found", city)
	}
}

// Create inserts a new city.
func Create(svc *service.CityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.CityCreate](c)
		if input == nil {
			return err
		}
		city, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create city", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "City created", city)
	}
}

// Update applies a partial update to a city.
func Update(svc *service.CityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[dto.CityUpdate](c)
		if input == nil {
			return err
		}
		city, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update city", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "City updated", city)
	}
}

// Delete removes a city unless services still reference it.
func Delete(svc *service.CityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete city", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "City deleted successfully", nil)
	}
}
