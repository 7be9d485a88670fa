package userRepo

import "mandry/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// AddFavorite adds an attraction id to the user's favorites set.
	AddFavorite(userID, attractionID string) error
	// RemoveFavorite removes an attraction id from the user's favorites set.
	RemoveFavorite(userID, attractionID string) error
}
