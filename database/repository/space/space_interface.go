package spaceRepo

import "venuehive/models"

// SpaceFilter narrows a browse query. Zero values mean "any".
type SpaceFilter struct {
	MinCapacity int
	PricingMode models.PricingMode
	Amenity     string
	City        string
}

// SpaceRepository defines the interface for space data access.
type SpaceRepository interface {
	Create(space *models.Space) error
	GetByID(id string) (*models.Space, error)
	Update(space *models.Space) error
	DeleteForHost(id, hostID string) error
	ListByHost(hostID string) ([]models.Space, error)
	List(filter SpaceFilter) ([]models.Space, error)
}
