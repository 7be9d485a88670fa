package review

// recomputeRating refreshes the attraction's cached rating as the arithmetic
// mean over all current reviews, user and external alike. An empty review set
// is a no-op: the last computed rating stays in place rather than being
// cleared or zeroed.
func (s *DefaultReviewService) recomputeRating(attractionID string) error {
	reviews, err := s.Reviews.FindByAttraction(attractionID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	total := 0
	for _, rev := range reviews {
		total += rev.Rating
	}
	mean := float64(total) / float64(len(reviews))

	return s.Attractions.SetRating(attractionID, mean)
}
