package models

import "time"

// Category classifies an attraction.
type Category string

const (
	CategoryHistorical    Category = "historical"
	CategoryNatural       Category = "natural"
	CategoryCultural      Category = "cultural"
	CategoryEntertainment Category = "entertainment"
	CategoryReligious     Category = "religious"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryHistorical, CategoryNatural, CategoryCultural,
		CategoryEntertainment, CategoryReligious:
		return true
	}
	return false
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Attraction is a directory entry. Rating is a cached derived value: the
// arithmetic mean of all current reviews, recomputed after every review
// write. It is nil until the first recompute and keeps its last value when
// the review set becomes empty.
type Attraction struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Category    Category `json:"category" bson:"category"`
	Location    GeoPoint `json:"location" bson:"location"`
	Images      []string `json:"images" bson:"images"`
	Rating      *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Address     string   `json:"address" bson:"address"`

	// GooglePlaceID links the attraction to the external places provider.
	// Empty for purely user-curated entries.
	GooglePlaceID string `json:"googlePlaceId,omitempty" bson:"google_place_id,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
