package user

import (
	"context"
	"strings"

	"mandry/models"
	"mandry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account, hashes the password and returns a signed
// token. Hashing and token issuance are free-standing operations here, not
// behavior hung off the user record.
func (s *DefaultUserService) Register(email, password, name string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return nil, utils.BadRequestError{Reason: "a valid email is required"}
	case len(password) < 6:
		return nil, utils.BadRequestError{Reason: "password must be at least 6 characters"}
	case strings.TrimSpace(name) == "":
		return nil, utils.BadRequestError{Reason: "name is required"}
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError{Reason: "a user with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Favorites:    []string{},
		Role:         "user",
	}
	// The unique email index closes the race with a concurrent register.
	if err := s.Repo.Create(account); err != nil {
		return nil, err
	}

	return s.issueToken(account)
}

// Authenticate verifies credentials and returns a signed token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, utils.ForbiddenError{Reason: "invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ForbiddenError{Reason: "invalid email or password"}
	}

	return s.issueToken(account)
}

// issueToken signs a JWT for the account and seeds the auth cache with its
// hash so the auth middleware can skip the DB on the next request.
func (s *DefaultUserService) issueToken(account *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, err
	}

	cache := utils.AuthCacheClient
	if cache != nil {
		key := utils.AuthCachePrefix + account.ID
		if err := cache.Set(context.Background(), key, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to seed auth cache", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:    account.ID,
		Token: token,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

// GetByID retrieves an account by id.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// AddFavorite adds an attraction to the account's favorites.
func (s *DefaultUserService) AddFavorite(userID, attractionID string) (*models.User, error) {
	if _, err := uuid.Parse(attractionID); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid attraction id"}
	}
	if err := s.Repo.AddFavorite(userID, attractionID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(userID)
}

// RemoveFavorite removes an attraction from the account's favorites.
func (s *DefaultUserService) RemoveFavorite(userID, attractionID string) (*models.User, error) {
	if _, err := uuid.Parse(attractionID); err != nil {
		return nil, utils.BadRequestError{Reason: "invalid attraction id"}
	}
	if err := s.Repo.RemoveFavorite(userID, attractionID); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(userID)
}
