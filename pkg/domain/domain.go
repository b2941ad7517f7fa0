// Package domain defines the entities of the services directory and the
// sentinel errors shared across layers.
package domain

// City is a place where services are offered. Referenced by Service.CityID.
type City struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// Category groups services by trade. Referenced by Service.CategoryID.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// User is a directory account. AvatarURL is owned by the asset service and
// stays nil until an avatar has been uploaded.
type User struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

// CityRef is the slice of a city embedded in service reads.
type CityRef struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// CategoryRef is the slice of a category embedded in service reads.
type CategoryRef struct {
	Name string `json:"name"`
}

// Service is a directory listing. Reads always carry the referenced city and
// category denormalized into City and Category. LogoURL is owned by the
// asset service.
type Service struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	CityID      uint        `json:"city_id"`
	CategoryID  uint        `json:"category_id"`
	LogoURL     *string     `json:"logo_url"`
	City        CityRef     `json:"city"`
	Category    CategoryRef `json:"category"`
}
