// Package dto holds the wire-level input structures. Update DTOs use pointer
// fields: a nil field was not supplied and is left untouched by the update.
// Absent and explicit-null collapse to nil, so a nullable column cannot be
// cleared through an update.
package dto

// CityCreate is the request body for creating a city.
type CityCreate struct {
	Name  string `json:"name" validate:"required"`
	State string `json:"state" validate:"required"`
}

// CityUpdate is the request body for partially updating a city.
type CityUpdate struct {
	Name  *string `json:"name,omitempty"`
	State *string `json:"state,omitempty"`
}
