// Package common provides the shared response envelope, the RFC 9457
// problem-details error shape, and request binding helpers for the web
// layer.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/locali/locali/pkg/domain"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // URI reference identifying the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference of this occurrence
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
func ProblemDetailsJSON(c *fiber.Ctx, status int, title string, detail string) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to HTTP status codes. NotFound is
// 404, the conflict and invalid-input family is 400, blob-store failures
// are 500.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrNoFieldsToUpdate),
		errors.Is(err, domain.ErrNoAsset),
		errors.Is(err, domain.ErrCreateFailed):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUploadFailed),
		errors.Is(err, domain.ErrDeleteFailed):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// DomainErrorJSON writes a problem response with the status derived from
// the domain error and the error message as detail.
func DomainErrorJSON(c *fiber.Ctx, title string, err error) error {
	return ProblemDetailsJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure it writes the error response and
// returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}

// ParseID parses the numeric id path parameter. On failure it writes the
// error response and returns ok=false.
func ParseID(c *fiber.Ctx, name string) (uint, bool, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 0 {
		return 0, false, ProblemDetailsJSON(c, fiber.StatusBadRequest,
			"Invalid id", name+" must be a non-negative integer")
	}
	return uint(id), true, nil
}
