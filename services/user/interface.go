package user

import (
	userRepo "mandry/database/repository/user"
	"mandry/models"
)

// UserService covers account registration, authentication and favorites.
type UserService interface {
	Register(email, password, name string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(userID string) (*models.User, error)
	AddFavorite(userID, attractionID string) (*models.User, error)
	RemoveFavorite(userID, attractionID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the account's public fields and a signed token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
