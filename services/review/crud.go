package review

import (
	"context"
	"strings"
	"time"

	"mandry/models"
	"mandry/utils"

	"github.com/google/uuid"
)

// validateContent checks the caller-supplied review fields before anything
// reaches the store.
func validateContent(rating int, text string) error {
	if rating < 1 || rating > 5 {
		return utils.BadRequestError{Reason: "rating must be between 1 and 5"}
	}
	if strings.TrimSpace(text) == "" {
		return utils.BadRequestError{Reason: "review text is required"}
	}
	return nil
}

// ListAttractionReviews refreshes external reviews, recomputes the rating and
// returns the merged set, newest occurredAt first.
func (s *DefaultReviewService) ListAttractionReviews(ctx context.Context, attractionID string) ([]models.Review, error) {
	if _, err := uuid.Parse(attractionID); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid attraction id"}
	}

	attraction, err := s.Attractions.GetByID(attractionID)
	if err != nil {
		return nil, err
	}

	if err := s.syncExternalReviews(ctx, attraction); err != nil {
		return nil, err
	}

	return s.Reviews.FindByAttraction(attractionID)
}

// CreateReview stores a user review and recomputes the attraction rating.
func (s *DefaultReviewService) CreateReview(ctx context.Context, userID, attractionID string, rating int, text string) (*models.Review, error) {
	if _, err := uuid.Parse(attractionID); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid attraction id"}
	}
	if err := validateContent(rating, text); err != nil {
		return nil, err
	}

	if _, err := s.Attractions.GetByID(attractionID); err != nil {
		return nil, err
	}

	author, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Reviews.FindUserReview(userID, attractionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError{Reason: "you have already reviewed this attraction"}
	}

	rev := &models.Review{
		ID:           uuid.NewString(),
		AttractionID: attractionID,
		UserID:       userID,
		AuthorName:   author.Name,
		AuthorPhoto:  author.Photo,
		Rating:       rating,
		Text:         text,
		OccurredAt:   time.Now(),
		Source:       models.SourceUser,
	}
	// The unique (attraction_id, user_id) index closes the race between the
	// lookup above and this insert.
	if err := s.Reviews.Insert(rev); err != nil {
		return nil, err
	}

	if err := s.recomputeRating(attractionID); err != nil {
		return nil, err
	}
	return rev, nil
}

// UpdateReview changes the rating and text of the caller's own review.
func (s *DefaultReviewService) UpdateReview(ctx context.Context, userID, reviewID string, rating int, text string) (*models.Review, error) {
	if _, err := uuid.Parse(reviewID); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid review id"}
	}
	if err := validateContent(rating, text); err != nil {
		return nil, err
	}

	rev, err := s.Reviews.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if rev.Source != models.SourceUser || rev.UserID != userID {
		return nil, utils.ForbiddenError{Reason: "cannot edit this review"}
	}

	if err := s.Reviews.UpdateContent(reviewID, rating, text); err != nil {
		return nil, err
	}
	if err := s.recomputeRating(rev.AttractionID); err != nil {
		return nil, err
	}

	rev.Rating = rating
	rev.Text = text
	return rev, nil
}

// DeleteReview removes the caller's own review and recomputes the rating
// over the reduced set.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if _, err := uuid.Parse(reviewID); err != nil {
		return utils.BadRequestError{Reason: "invalid review id"}
	}

	rev, err := s.Reviews.GetByID(reviewID)
	if err != nil {
		return err
	}
	if rev.Source != models.SourceUser || rev.UserID != userID {
		return utils.ForbiddenError{Reason: "cannot delete this review"}
	}

	if err := s.Reviews.Delete(reviewID); err != nil {
		return err
	}
	return s.recomputeRating(rev.AttractionID)
}
