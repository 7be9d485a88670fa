package attraction

import (
	"context"

	attractionRepo "mandry/database/repository/attraction"
	"mandry/models"
	"mandry/services/places"
	"mandry/services/storage"
)

// AttractionService manages the attraction directory: CRUD, provider-backed
// discovery and one-shot import of a provider place into a directory entry.
type AttractionService interface {
	List(category models.Category) ([]models.Attraction, error)
	Get(id string) (*models.Attraction, error)
	Create(attraction *models.Attraction) (*models.Attraction, error)
	Update(id string, patch *models.Attraction) (*models.Attraction, error)
	Delete(id string) error

	// Nearby lists provider attractions around a coordinate.
	Nearby(ctx context.Context, location places.GeoQuery) ([]places.PlaceSummary, error)
	// Search runs a free-text provider search for the curation UI.
	Search(ctx context.Context, query string, location places.GeoQuery) ([]places.PlaceSummary, error)
	// ImportFromPlace creates a directory entry from a provider place.
	ImportFromPlace(ctx context.Context, placeID string) (*models.Attraction, error)
	// AddPhoto uploads an image and appends its URL to the attraction.
	AddPhoto(ctx context.Context, id, localFilePath string) (string, error)
}

// DefaultAttractionService is the production implementation.
type DefaultAttractionService struct {
	Repo    attractionRepo.AttractionRepository
	Gateway places.Gateway
	Storage storage.StorageService
}
