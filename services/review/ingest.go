package review

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mandry/models"
	"mandry/services/places"
	"mandry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// externalReviewKey derives the deduplication key for a provider review.
// The provider exposes no stable review id; the composite of place id,
// posting timestamp and author name stands in for one. Two reviews by the
// same author on the same place in the same second collide — accepted.
func externalReviewKey(placeID string, timestampSeconds int64, authorName string) string {
	return fmt.Sprintf("%s_%d_%s", placeID, timestampSeconds, authorName)
}

// syncExternalReviews reconciles the store against the provider's current
// reviews for the attraction, then recomputes the cached rating exactly once.
// Attractions without a linked place id skip the provider round trip but
// still get the recompute.
func (s *DefaultReviewService) syncExternalReviews(ctx context.Context, attraction *models.Attraction) error {
	if attraction.GooglePlaceID != "" {
		details, err := s.Gateway.PlaceDetails(ctx, attraction.GooglePlaceID)
		if err != nil {
			// A gateway failure fails the whole read; stored reviews are
			// not served as a fallback.
			return err
		}

		if details != nil && len(details.Reviews) > 0 {
			logger := utils.GetLogger()
			var wg sync.WaitGroup
			for _, providerReview := range details.Reviews {
				wg.Add(1)
				go func(pr places.PlaceReview) {
					defer wg.Done()
					if err := s.upsertExternalReview(attraction, pr); err != nil {
						// One bad item never aborts the batch.
						logger.Warn("Skipping external review",
							zap.String("attractionId", attraction.ID),
							zap.String("author", pr.AuthorName),
							zap.Error(err))
					}
				}(providerReview)
			}
			wg.Wait()
		}
	}

	return s.recomputeRating(attraction.ID)
}

// upsertExternalReview stores one provider review, updating rating/text in
// place when the upstream copy changed. Identity and occurredAt are never
// altered on refresh.
func (s *DefaultReviewService) upsertExternalReview(attraction *models.Attraction, pr places.PlaceReview) error {
	if pr.Rating < 1 || pr.Rating > 5 {
		return utils.BadRequestError{Reason: fmt.Sprintf("provider rating %d out of range", pr.Rating)}
	}
	if strings.TrimSpace(pr.Text) == "" {
		return utils.BadRequestError{Reason: "provider review has no text"}
	}

	key := externalReviewKey(attraction.GooglePlaceID, pr.Time, pr.AuthorName)

	existing, err := s.Reviews.FindByExternalKey(key, attraction.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Text != pr.Text || existing.Rating != pr.Rating {
			return s.Reviews.UpdateContent(existing.ID, pr.Rating, pr.Text)
		}
		return nil
	}

	rev := &models.Review{
		ID:                 uuid.NewString(),
		AttractionID:       attraction.ID,
		AuthorName:         pr.AuthorName,
		AuthorPhoto:        pr.ProfilePhotoURL,
		Rating:             pr.Rating,
		Text:               pr.Text,
		OccurredAt:         time.Unix(pr.Time, 0),
		Source:             models.SourceExternal,
		ExternalKey:        key,
		Language:           pr.Language,
		ExternalProfileURL: pr.AuthorURL,
	}
	// The unique (external_key, attraction_id) index makes this insert the
	// atomic check-and-insert; a concurrent twin in the same batch comes
	// back as ConflictError and is dropped by the caller.
	return s.Reviews.Insert(rev)
}
