package attraction

import "mandry/models"

// CategoryFromPlaceTypes infers a directory category from the provider's
// place type tags. Historic sites are the default.
func CategoryFromPlaceTypes(types []string) models.Category {
	has := func(wanted ...string) bool {
		for _, t := range types {
			for _, w := range wanted {
				if t == w {
					return true
				}
			}
		}
		return false
	}

	switch {
	case has("church", "place_of_worship"):
		return models.CategoryReligious
	case has("museum", "art_gallery", "library"):
		return models.CategoryCultural
	case has("amusement_park", "zoo", "aquarium"):
		return models.CategoryEntertainment
	case has("natural_feature", "park", "campground"):
		return models.CategoryNatural
	default:
		return models.CategoryHistorical
	}
}
