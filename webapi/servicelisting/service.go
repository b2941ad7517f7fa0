// Package servicelisting exposes the /services endpoints, including the
// logo asset routes.
package servicelisting

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/service"
	"github.com/locali/locali/webapi/common"
)

// Routes registers the service-listing endpoints.
func Routes(app *fiber.App, svc *service.ServiceService, assets *service.AssetService) {
	app.Get("/services", List(svc))
	app.Get("/services/:id", Get(svc))
	app.Post("/services", Create(svc))
	app.Put("/services/:id", Update(svc))
	app.Delete("/services/:id", Delete(svc))
	app.Post("/services/:id/logo", UploadLogo(assets))
	app.Delete("/services/:id/logo", DeleteLogo(assets))
}

// List returns services, optionally narrowed by the city_id and
// category_id query parameters. Every row carries the referenced city and
// category names.
func List(svc *service.ServiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Zero is treated as "no filter".
		filter := &dto.ServiceFilter{}
		if v := c.QueryInt("city_id"); v > 0 {
			id := uint(v)
			filter.CityID = &id
		}
		if v := c.QueryInt("category_id"); v > 0 {
			id := uint(v)
			filter.CategoryID = &id
		}
		services, err := svc.List(c.Context(), filter)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list services", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Services found", services)
	}
}

// Get returns a single service by id, joined with its city and category.
func Get(svc *service.ServiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		listing, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Service not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Service found", listing)
	}
}

// Create inserts a new service after validating its references.
func Create(svc *service.ServiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ServiceCreate](c)
		if input == nil {
			return err
		}
		listing, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create service", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Service created", listing)
	}
}

// Update applies a partial update to a service, validating any supplied
// references.
func Update(svc *service.ServiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[dto.ServiceUpdate](c)
		if input == nil {
			return err
		}
		listing, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update service", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Service updated", listing)
	}
}

// Delete removes a service and, best-effort, the logo blob.
func Delete(svc *service.ServiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete service", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Service deleted successfully", nil)
	}
}

// UploadLogo reads the multipart file part and stores it as the service's
// logo. Responds with {"logo_url": ...}.
func UploadLogo(assets *service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		header, err := c.FormFile("file")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid upload", "multipart file part is required")
		}
		file, err := header.Open()
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid upload", err.Error())
		}
		defer file.Close() //nolint:errcheck
		data, err := io.ReadAll(file)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
				"Invalid upload", err.Error())
		}

		url, err := assets.UploadServiceLogo(
			c.Context(), id, data, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't upload logo", err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"logo_url": url})
	}
}

// DeleteLogo removes the service's logo blob and clears logo_url.
func DeleteLogo(assets *service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := assets.DeleteServiceLogo(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete logo", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logo deleted successfully", nil)
	}
}
