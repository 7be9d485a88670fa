package places

import "mandry/models"

// PlaceReview is one third-party review as returned by the provider. Time is
// the original posting time in seconds since epoch, not the fetch time.
type PlaceReview struct {
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	Time            int64  `json:"time"`
	Language        string `json:"language"`
}

// Photo is a provider photo reference, resolvable via Client.PhotoURL.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

type editorialSummary struct {
	Overview string `json:"overview"`
}

type geometry struct {
	Location models.GeoPoint `json:"location"`
}

// PlaceDetails is the provider's full record for a single place.
type PlaceDetails struct {
	PlaceID          string           `json:"place_id"`
	Name             string           `json:"name"`
	FormattedAddress string           `json:"formatted_address"`
	Geometry         geometry         `json:"geometry"`
	Rating           float64          `json:"rating"`
	Types            []string         `json:"types"`
	Photos           []Photo          `json:"photos"`
	EditorialSummary editorialSummary `json:"editorial_summary"`
	Reviews          []PlaceReview    `json:"reviews"`
}

// Location returns the place coordinates.
func (d *PlaceDetails) Location() models.GeoPoint {
	return d.Geometry.Location
}

// Description returns the provider's editorial overview, if any.
func (d *PlaceDetails) Description() string {
	return d.EditorialSummary.Overview
}

// PlaceSummary is one entry of a search result set.
type PlaceSummary struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Geometry         geometry `json:"geometry"`
	Rating           float64  `json:"rating"`
	Types            []string `json:"types"`
	Photos           []Photo  `json:"photos"`
}

// Address returns whichever address field the endpoint populated.
func (s *PlaceSummary) Address() string {
	if s.FormattedAddress != "" {
		return s.FormattedAddress
	}
	return s.Vicinity
}

// Location returns the place coordinates.
func (s *PlaceSummary) Location() models.GeoPoint {
	return s.Geometry.Location
}
