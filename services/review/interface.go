package review

import (
	"context"

	attractionRepo "mandry/database/repository/attraction"
	reviewRepo "mandry/database/repository/review"
	userRepo "mandry/database/repository/user"
	"mandry/models"
	"mandry/services/places"
)

// ReviewService is the review ingestion and write path.
//
// Listing an attraction's reviews is refresh-then-serve: the call first
// reconciles the store against the provider's current reviews, then returns
// the merged set. There is no cache or TTL in front of the refresh.
type ReviewService interface {
	// ListAttractionReviews refreshes external reviews for the attraction,
	// recomputes its rating and returns the merged review set, newest
	// occurredAt first.
	ListAttractionReviews(ctx context.Context, attractionID string) ([]models.Review, error)
	// CreateReview stores a user review. A user may review an attraction
	// at most once.
	CreateReview(ctx context.Context, userID, attractionID string, rating int, text string) (*models.Review, error)
	// UpdateReview changes the rating and text of the caller's own review.
	UpdateReview(ctx context.Context, userID, reviewID string, rating int, text string) (*models.Review, error)
	// DeleteReview removes the caller's own review.
	DeleteReview(ctx context.Context, userID, reviewID string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews     reviewRepo.ReviewRepository
	Attractions attractionRepo.AttractionRepository
	Users       userRepo.UserRepository
	Gateway     places.Gateway
}
