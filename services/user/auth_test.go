package user

import (
	"sync"
	"testing"

	"mandry/models"
	"mandry/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory UserRepository with a unique email check.
type memoryRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]models.User)}
}

func (m *memoryRepo) GetByID(id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "user", ID: id}
	}
	return &u, nil
}

func (m *memoryRepo) GetByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return utils.ConflictError{Reason: "a user with this email already exists"}
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memoryRepo) AddFavorite(userID, attractionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return utils.NotFoundError{Resource: "user", ID: userID}
	}
	for _, fav := range u.Favorites {
		if fav == attractionID {
			return nil
		}
	}
	u.Favorites = append(u.Favorites, attractionID)
	m.users[userID] = u
	return nil
}

func (m *memoryRepo) RemoveFavorite(userID, attractionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return utils.NotFoundError{Resource: "user", ID: userID}
	}
	kept := u.Favorites[:0]
	for _, fav := range u.Favorites {
		if fav != attractionID {
			kept = append(kept, fav)
		}
	}
	u.Favorites = kept
	m.users[userID] = u
	return nil
}

func TestRegister_CreatesAccountAndToken(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemoryRepo()}

	resp, err := svc.Register("Taras@Example.com", "s3cret-pass", "Taras")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "taras@example.com", resp.Email, "emails are normalized to lower case")
	assert.Equal(t, "user", resp.Role)

	sub, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sub)

	account, err := svc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash, "passwords are stored hashed")
}

func TestRegister_Validation(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemoryRepo()}

	cases := []struct{ email, password, name string }{
		{"not-an-email", "s3cret-pass", "Taras"},
		{"", "s3cret-pass", "Taras"},
		{"taras@example.com", "short", "Taras"},
		{"taras@example.com", "s3cret-pass", "  "},
	}
	for _, tc := range cases {
		_, err := svc.Register(tc.email, tc.password, tc.name)
		var badRequest utils.BadRequestError
		assert.ErrorAs(t, err, &badRequest, "email=%q password=%q name=%q", tc.email, tc.password, tc.name)
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemoryRepo()}

	_, err := svc.Register("taras@example.com", "s3cret-pass", "Taras")
	require.NoError(t, err)

	_, err = svc.Register("TARAS@example.com", "other-pass", "Impostor")
	var conflict utils.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemoryRepo()}

	registered, err := svc.Register("taras@example.com", "s3cret-pass", "Taras")
	require.NoError(t, err)

	resp, err := svc.Authenticate("taras@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	var forbidden utils.ForbiddenError
	_, err = svc.Authenticate("taras@example.com", "wrong-pass")
	assert.ErrorAs(t, err, &forbidden)

	_, err = svc.Authenticate("nobody@example.com", "s3cret-pass")
	assert.ErrorAs(t, err, &forbidden, "unknown accounts get the same answer as bad passwords")
}

func TestFavorites(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemoryRepo()}

	registered, err := svc.Register("taras@example.com", "s3cret-pass", "Taras")
	require.NoError(t, err)

	attractionID := uuid.NewString()

	_, err = svc.AddFavorite(registered.ID, "not-a-uuid")
	var badRequest utils.BadRequestError
	assert.ErrorAs(t, err, &badRequest)

	account, err := svc.AddFavorite(registered.ID, attractionID)
	require.NoError(t, err)
	assert.Equal(t, []string{attractionID}, account.Favorites)

	// Adding twice is a no-op.
	account, err = svc.AddFavorite(registered.ID, attractionID)
	require.NoError(t, err)
	assert.Len(t, account.Favorites, 1)

	account, err = svc.RemoveFavorite(registered.ID, attractionID)
	require.NoError(t, err)
	assert.Empty(t, account.Favorites)
}
