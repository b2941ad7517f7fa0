// Package category exposes the /categories endpoints.
package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/service"
	"github.com/locali/locali/webapi/common"
)

// Routes registers the category endpoints.
func Routes(app *fiber.App, svc *service.CategoryService) {
	app.Get("/categories", List(svc))
	app.Get("/categories/:id", Get(svc))
	app.Post("/categories", Create(svc))
	app.Put("/categories/:id", Update(svc))
	app.Delete("/categories/:id", Delete(svc))
}

// List returns all categories.
func List(svc *service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := svc.List(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list categories", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories found", categories)
	}
}

// Get returns a single category by id.
func Get(svc *service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		category, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "Category not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category found", category)
	}
}

// Create inserts a new category.
func Create(svc *service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.CategoryCreate](c)
		if input == nil {
			return err
		}
		category, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Category created", category)
	}
}

// Update applies a partial update to a category.
func Update(svc *service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[dto.CategoryUpdate](c)
		if input == nil {
			return err
		}
		category, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category updated", category)
	}
}

// Delete removes a category unless services still reference it.
func Delete(svc *service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category deleted successfully", nil)
	}
}
