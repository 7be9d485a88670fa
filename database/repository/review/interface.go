package reviewRepo

import "mandry/models"

// ReviewRepository defines methods for review data access.
//
// Uniqueness is enforced by the store itself: Insert is an atomic
// check-and-insert backed by unique indexes, never a separate lookup
// followed by a write. Callers are responsible for triggering a rating
// recompute after any mutation.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// FindByAttraction retrieves every review for an attraction,
	// newest occurredAt first.
	FindByAttraction(attractionID string) ([]models.Review, error)
	// FindByExternalKey retrieves the external review matching the
	// (externalKey, attractionID) pair, or nil when absent.
	FindByExternalKey(externalKey, attractionID string) (*models.Review, error)
	// FindUserReview retrieves the user-sourced review a user left on an
	// attraction, or nil when absent.
	FindUserReview(userID, attractionID string) (*models.Review, error)
	// Insert stores a new review. Returns utils.ConflictError when it
	// would violate a uniqueness invariant.
	Insert(review *models.Review) error
	// UpdateContent modifies the rating and text of an existing review.
	// Only those two fields are mutable.
	UpdateContent(id string, rating int, text string) error
	// Delete removes a review by its ID.
	Delete(id string) error
}
