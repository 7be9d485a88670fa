package review

import (
	"context"
	"sort"
	"sync"

	"mandry/models"
	"mandry/services/places"
	"mandry/utils"
)

// fakeReviewStore is an in-memory ReviewRepository. Uniqueness is enforced
// under one lock so the engine's concurrent fan-out sees the same atomic
// check-and-insert the Mongo indexes provide.
type fakeReviewStore struct {
	mu      sync.Mutex
	reviews map[string]models.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[string]models.Review)}
}

func (f *fakeReviewStore) GetByID(id string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rev, ok := f.reviews[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "review", ID: id}
	}
	return &rev, nil
}

func (f *fakeReviewStore) FindByAttraction(attractionID string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Review
	for _, rev := range f.reviews {
		if rev.AttractionID == attractionID {
			result = append(result, rev)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredAt.After(result[j].OccurredAt)
	})
	return result, nil
}

func (f *fakeReviewStore) FindByExternalKey(externalKey, attractionID string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rev := range f.reviews {
		if rev.Source == models.SourceExternal && rev.ExternalKey == externalKey && rev.AttractionID == attractionID {
			out := rev
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewStore) FindUserReview(userID, attractionID string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rev := range f.reviews {
		if rev.Source == models.SourceUser && rev.UserID == userID && rev.AttractionID == attractionID {
			out := rev
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewStore) Insert(review *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rev := range f.reviews {
		if rev.AttractionID != review.AttractionID {
			continue
		}
		if review.Source == models.SourceExternal &&
			rev.Source == models.SourceExternal && rev.ExternalKey == review.ExternalKey {
			return utils.ConflictError{Reason: "review already exists"}
		}
		if review.Source == models.SourceUser &&
			rev.Source == models.SourceUser && rev.UserID == review.UserID {
			return utils.ConflictError{Reason: "review already exists"}
		}
	}
	f.reviews[review.ID] = *review
	return nil
}

func (f *fakeReviewStore) UpdateContent(id string, rating int, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rev, ok := f.reviews[id]
	if !ok {
		return utils.NotFoundError{Resource: "review", ID: id}
	}
	rev.Rating = rating
	rev.Text = text
	f.reviews[id] = rev
	return nil
}

func (f *fakeReviewStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[id]; !ok {
		return utils.NotFoundError{Resource: "review", ID: id}
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reviews)
}

// fakeAttractionStore is an in-memory AttractionRepository.
type fakeAttractionStore struct {
	mu          sync.Mutex
	attractions map[string]models.Attraction
}

func newFakeAttractionStore() *fakeAttractionStore {
	return &fakeAttractionStore{attractions: make(map[string]models.Attraction)}
}

func (f *fakeAttractionStore) GetByID(id string) (*models.Attraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.attractions[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "attraction", ID: id}
	}
	return &a, nil
}

func (f *fakeAttractionStore) GetByPlaceID(placeID string) (*models.Attraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attractions {
		if a.GooglePlaceID == placeID {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAttractionStore) GetAll(category models.Category) ([]models.Attraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Attraction
	for _, a := range f.attractions {
		if category == "" || a.Category == category {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAttractionStore) Create(attraction *models.Attraction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.attractions {
		if attraction.GooglePlaceID != "" && a.GooglePlaceID == attraction.GooglePlaceID {
			return utils.ConflictError{Reason: "attraction already exists"}
		}
	}
	f.attractions[attraction.ID] = *attraction
	return nil
}

func (f *fakeAttractionStore) Update(attraction *models.Attraction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.attractions[attraction.ID]; !ok {
		return utils.NotFoundError{Resource: "attraction", ID: attraction.ID}
	}
	f.attractions[attraction.ID] = *attraction
	return nil
}

func (f *fakeAttractionStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.attractions[id]; !ok {
		return utils.NotFoundError{Resource: "attraction", ID: id}
	}
	delete(f.attractions, id)
	return nil
}

func (f *fakeAttractionStore) SetRating(id string, rating float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.attractions[id]
	if !ok {
		return utils.NotFoundError{Resource: "attraction", ID: id}
	}
	a.Rating = &rating
	f.attractions[id] = a
	return nil
}

func (f *fakeAttractionStore) AppendImage(id string, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.attractions[id]
	if !ok {
		return utils.NotFoundError{Resource: "attraction", ID: id}
	}
	a.Images = append(a.Images, imageURL)
	f.attractions[id] = a
	return nil
}

func (f *fakeAttractionStore) rating(id string) *float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := f.attractions[id]
	return a.Rating
}

// fakeUserStore is an in-memory UserRepository.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "user", ID: id}
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) AddFavorite(userID, attractionID string) error    { return nil }
func (f *fakeUserStore) RemoveFavorite(userID, attractionID string) error { return nil }

// fakeGateway is a scripted places Gateway that counts calls.
type fakeGateway struct {
	mu      sync.Mutex
	details map[string]*places.PlaceDetails
	err     error
	calls   int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{details: make(map[string]*places.PlaceDetails)}
}

func (f *fakeGateway) PlaceDetails(ctx context.Context, placeID string) (*places.PlaceDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.details[placeID], nil
}

func (f *fakeGateway) NearbySearch(ctx context.Context, location places.GeoQuery) ([]places.PlaceSummary, error) {
	return nil, nil
}

func (f *fakeGateway) TextSearch(ctx context.Context, query string, location places.GeoQuery) ([]places.PlaceSummary, error) {
	return nil, nil
}

func (f *fakeGateway) PhotoURL(photoReference string, maxWidth int) string {
	return "https://photos.example/" + photoReference
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
