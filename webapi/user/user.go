// Package user exposes the /users endpoints, including the avatar asset
// routes.
package user

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/dto"
	"github.com/locali/locali/pkg/service"
	"github.com/locali/locali/webapi/common"
)

// Routes registers the user endpoints.
func Routes(app *fiber.App, svc *service.UserService, assets *service.AssetService) {
	app.Get("/users", List(svc))
	app.Get("/users/:id", Get(svc))
	app.Post("/users", Create(svc))
	app.Put("/users/:id", Update(svc))
	app.Delete("/users/:id", Delete(svc))
	app.Post("/users/:id/avatar", UploadAvatar(assets))
	app.Delete("/users/:id/avatar", DeleteAvatar(assets))
}

// List returns all users.
func List(svc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users found", users)
	}
}

// Get returns a single user by id.
func Get(svc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		user, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", user)
	}
}

// Create inserts a new user after the duplicate-email check.
func Create(svc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.UserCreate](c)
		if input == nil {
			return err
		}
		user, err := svc.Create(c.Context(), input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", user)
	}
}

// Update applies a partial update to a user.
func Update(svc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[dto.UserUpdate](c)
		if input == nil {
			return err
		}
		user, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", user)
	}
}

// Delete removes a user and, best-effort, the avatar blob.
func Delete(svc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User deleted successfully", nil)
	}
}

// UploadAvatar reads the multipart file part and stores it as the user's
// avatar. Responds with {"avatar_url": ...}.
func UploadAvatar(assets *service.AssetService) fiber.Handler {
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

		url, err := assets.UploadUserAvatar(
			c.Context(), id, data, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't upload avatar", err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"avatar_url": url})
	}
}

// DeleteAvatar removes the user's avatar blob and clears avatar_url.
func DeleteAvatar(assets *service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		if err := assets.DeleteUserAvatar(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, "Couldn't delete avatar", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Avatar deleted successfully", nil)
	}
}
