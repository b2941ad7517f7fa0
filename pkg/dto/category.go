package dto

// CategoryCreate is the request body for creating a category.
type CategoryCreate struct {
	Name string `json:"name" validate:"required"`
}

// CategoryUpdate is the request body for partially updating a category.
type CategoryUpdate struct {
	Name *string `json:"name,omitempty"`
}
