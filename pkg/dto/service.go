package dto

// ServiceCreate is the request body for creating a service listing.
type ServiceCreate struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	CityID      uint    `json:"city_id" validate:"required"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// ServiceUpdate is the request body for partially updating a service.
type ServiceUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CityID      *uint   `json:"city_id,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
}

// ServiceFilter narrows service listings by exact match. Nil fields are
// ignored.
type ServiceFilter struct {
	CityID     *uint
	CategoryID *uint
}
