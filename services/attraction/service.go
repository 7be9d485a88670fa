package attraction

import (
	"context"
	"strings"

	"mandry/models"
	"mandry/services/places"
	"mandry/utils"

	"github.com/google/uuid"
)

const importedDescriptionFallback = "No description available. This information was imported from the places provider."

// List retrieves all attractions, optionally filtered by category.
func (s *DefaultAttractionService) List(category models.Category) ([]models.Attraction, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, utils.BadRequestError{Reason: "unknown category"}
	}
	return s.Repo.GetAll(category)
}

// Get retrieves an attraction by id.
func (s *DefaultAttractionService) Get(id string) (*models.Attraction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid attraction id"}
	}
	return s.Repo.GetByID(id)
}

func validateAttraction(a *models.Attraction) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return utils.BadRequestError{Reason: "name is required"}
	case strings.TrimSpace(a.Description) == "":
		return utils.BadRequestError{Reason: "description is required"}
	case strings.TrimSpace(a.Address) == "":
		return utils.BadRequestError{Reason: "address is required"}
	case !models.ValidCategory(a.Category):
		return utils.BadRequestError{Reason: "unknown category"}
	}
	return nil
}

// Create inserts a new curated attraction.
func (s *DefaultAttractionService) Create(attraction *models.Attraction) (*models.Attraction, error) {
	if err := validateAttraction(attraction); err != nil {
		return nil, err
	}
	attraction.ID = uuid.NewString()
	// The cached rating is derived; it never arrives from the caller.
	attraction.Rating = nil
	if attraction.Images == nil {
		attraction.Images = []string{}
	}
	if err := s.Repo.Create(attraction); err != nil {
		return nil, err
	}
	return attraction, nil
}

// Update replaces the descriptive fields of an existing attraction. The
// cached rating and the provider link are not caller-mutable here.
func (s *DefaultAttractionService) Update(id string, patch *models.Attraction) (*models.Attraction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid attraction id"}
	}
	if err := validateAttraction(patch); err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	current.Name = patch.Name
	current.Description = patch.Description
	current.Category = patch.Category
	current.Location = patch.Location
	current.Address = patch.Address
	if patch.Images != nil {
		current.Images = patch.Images
	}

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes an attraction by id.
func (s *DefaultAttractionService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequestError{Reason: "invalid attraction id"}
	}
	return s.Repo.Delete(id)
}

// Nearby lists provider attractions around a coordinate.
func (s *DefaultAttractionService) Nearby(ctx context.Context, location places.GeoQuery) ([]places.PlaceSummary, error) {
	if location.Radius <= 0 {
		location.Radius = 10000
	}
	return s.Gateway.NearbySearch(ctx, location)
}

// Search runs a free-text provider search.
func (s *DefaultAttractionService) Search(ctx context.Context, query string, location places.GeoQuery) ([]places.PlaceSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.BadRequestError{Reason: "query is required"}
	}
	if location.Radius <= 0 {
		location.Radius = 50000
	}
	return s.Gateway.TextSearch(ctx, query, location)
}

// ImportFromPlace creates a directory entry from a provider place. Importing
// the same place twice is a conflict.
func (s *DefaultAttractionService) ImportFromPlace(ctx context.Context, placeID string) (*models.Attraction, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, utils.BadRequestError{Reason: "place id is required"}
	}

	existing, err := s.Repo.GetByPlaceID(placeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError{Reason: "attraction already imported"}
	}

	details, err := s.Gateway.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, utils.NotFoundError{Resource: "place", ID: placeID}
	}

	description := details.Description()
	if description == "" {
		description = importedDescriptionFallback
	}

	images := []string{}
	for i, photo := range details.Photos {
		if i == 5 {
			break
		}
		images = append(images, s.Gateway.PhotoURL(photo.PhotoReference, 800))
	}

	attraction := &models.Attraction{
		ID:            uuid.NewString(),
		Name:          details.Name,
		Description:   description,
		Category:      CategoryFromPlaceTypes(details.Types),
		Location:      details.Location(),
		Images:        images,
		Address:       details.FormattedAddress,
		GooglePlaceID: placeID,
	}
	if details.Rating > 0 {
		// Snapshot of the provider's own aggregate; replaced by the first
		// local recompute.
		rating := details.Rating
		attraction.Rating = &rating
	}

	if err := s.Repo.Create(attraction); err != nil {
		return nil, err
	}
	return attraction, nil
}

// AddPhoto uploads an image and appends its URL to the attraction.
func (s *DefaultAttractionService) AddPhoto(ctx context.Context, id, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", utils.BadRequestError{Reason: "photo storage is not configured"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", utils.BadRequestError{Reason: "invalid attraction id"}
	}
	if _, err := s.Repo.GetByID(id); err != nil {
		return "", err
	}

	imageURL, err := s.Storage.UploadFile(ctx, localFilePath, "attractions/"+id)
	if err != nil {
		return "", err
	}
	if err := s.Repo.AppendImage(id, imageURL); err != nil {
		return "", err
	}
	return imageURL, nil
}
