package attractionRepo

import "mandry/models"

// AttractionRepository defines methods for attraction data access.
type AttractionRepository interface {
	// GetByID retrieves an attraction by its unique ID.
	GetByID(id string) (*models.Attraction, error)
	// GetByPlaceID retrieves the attraction linked to an external place id,
	// or nil when none exists.
	GetByPlaceID(placeID string) (*models.Attraction, error)
	// GetAll retrieves all attractions, optionally filtered by category.
	GetAll(category models.Category) ([]models.Attraction, error)
	// Create inserts a new attraction record.
	Create(attraction *models.Attraction) error
	// Update replaces the mutable fields of an existing attraction.
	Update(attraction *models.Attraction) error
	// Delete removes an attraction record by its ID.
	Delete(id string) error
	// SetRating persists a recomputed cached rating. This is the only
	// field the rating aggregator mutates.
	SetRating(id string, rating float64) error
	// AppendImage adds an uploaded photo URL to the attraction.
	AppendImage(id string, imageURL string) error
}
