package review

import (
	"context"
	"testing"
	"time"

	"mandry/models"
	"mandry/services/places"
	"mandry/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultReviewService, *fakeReviewStore, *fakeAttractionStore, *fakeUserStore, *fakeGateway) {
	reviews := newFakeReviewStore()
	attractions := newFakeAttractionStore()
	users := newFakeUserStore()
	gateway := newFakeGateway()
	svc := &DefaultReviewService{
		Reviews:     reviews,
		Attractions: attractions,
		Users:       users,
		Gateway:     gateway,
	}
	return svc, reviews, attractions, users, gateway
}

func seedAttraction(t *testing.T, attractions *fakeAttractionStore, placeID string) *models.Attraction {
	t.Helper()
	a := &models.Attraction{
		ID:            uuid.NewString(),
		Name:          "Sofiivsky Park",
		Description:   "A landscape park in Uman.",
		Category:      models.CategoryNatural,
		Address:       "Kyivska St, 12a, Uman",
		GooglePlaceID: placeID,
	}
	require.NoError(t, attractions.Create(a))
	return a
}

func providerReview(author, text string, rating int, posted int64) places.PlaceReview {
	return places.PlaceReview{
		AuthorName:      author,
		AuthorURL:       "https://profiles.example/" + author,
		ProfilePhotoURL: "https://photos.example/" + author + ".jpg",
		Rating:          rating,
		Text:            text,
		Time:            posted,
		Language:        "uk",
	}
}

func TestExternalReviewKey(t *testing.T) {
	key := externalReviewKey("place-1", 1700000000, "Olena K")
	assert.Equal(t, "place-1_1700000000_Olena K", key)
}

func TestListAttractionReviews_InvalidID(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.ListAttractionReviews(context.Background(), "not-a-uuid")
	var badRequest utils.BadRequestError
	assert.ErrorAs(t, err, &badRequest)
}

func TestListAttractionReviews_UnknownAttraction(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.ListAttractionReviews(context.Background(), uuid.NewString())
	var notFound utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListAttractionReviews_NoPlaceIDSkipsGateway(t *testing.T) {
	svc, reviews, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "")

	require.NoError(t, reviews.Insert(&models.Review{
		ID:           uuid.NewString(),
		AttractionID: a.ID,
		UserID:       uuid.NewString(),
		AuthorName:   "Taras",
		Rating:       4,
		Text:         "Worth the trip.",
		OccurredAt:   time.Now(),
		Source:       models.SourceUser,
	}))

	got, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 0, gateway.callCount(), "unlinked attractions must not hit the provider")
}

func TestListAttractionReviews_IngestsProviderReviews(t *testing.T) {
	svc, _, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	gateway.details["place-1"] = &places.PlaceDetails{
		PlaceID: "place-1",
		Reviews: []places.PlaceReview{
			providerReview("Olena", "Beautiful fountains.", 5, 1700000000),
			providerReview("Dmytro", "Crowded on weekends.", 4, 1700000100),
		},
	}

	got, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest posting time first.
	assert.Equal(t, "Dmytro", got[0].AuthorName)
	assert.Equal(t, "Olena", got[1].AuthorName)

	for _, rev := range got {
		assert.Equal(t, models.SourceExternal, rev.Source)
		assert.NotEmpty(t, rev.ExternalKey)
		assert.Equal(t, "uk", rev.Language)
	}
	assert.Equal(t, time.Unix(1700000000, 0), got[1].OccurredAt)

	rating := attractions.rating(a.ID)
	require.NotNil(t, rating)
	assert.InDelta(t, 4.5, *rating, 0.0001)
}

func TestListAttractionReviews_RefreshIsIdempotent(t *testing.T) {
	svc, reviews, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	gateway.details["place-1"] = &places.PlaceDetails{
		PlaceID: "place-1",
		Reviews: []places.PlaceReview{
			providerReview("Olena", "Beautiful fountains.", 5, 1700000000),
			providerReview("Dmytro", "Crowded on weekends.", 4, 1700000100),
		},
	}

	first, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	second, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, reviews.count(), "re-ingesting the same payload must not duplicate")
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
	assert.Equal(t, 2, gateway.callCount(), "every read refreshes from the provider")
}

func TestListAttractionReviews_UpdatedPayloadEditsInPlace(t *testing.T) {
	svc, reviews, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	gateway.details["place-1"] = &places.PlaceDetails{
		PlaceID: "place-1",
		Reviews: []places.PlaceReview{
			providerReview("Olena", "Beautiful fountains.", 5, 1700000000),
		},
	}

	first, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The author edits their review upstream; identity fields stay put.
	gateway.details["place-1"].Reviews[0].Text = "Beautiful fountains, go early."
	gateway.details["place-1"].Reviews[0].Rating = 4

	second, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].OccurredAt, second[0].OccurredAt)
	assert.Equal(t, "Beautiful fountains, go early.", second[0].Text)
	assert.Equal(t, 4, second[0].Rating)
	assert.Equal(t, 1, reviews.count())

	rating := attractions.rating(a.ID)
	require.NotNil(t, rating)
	assert.InDelta(t, 4.0, *rating, 0.0001)
}

func TestListAttractionReviews_DuplicatePayloadStoredOnce(t *testing.T) {
	svc, reviews, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	dup := providerReview("Olena", "Beautiful fountains.", 5, 1700000000)
	gateway.details["place-1"] = &places.PlaceDetails{
		PlaceID: "place-1",
		Reviews: []places.PlaceReview{dup, dup},
	}

	got, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, reviews.count())

	rating := attractions.rating(a.ID)
	require.NotNil(t, rating)
	assert.InDelta(t, 5.0, *rating, 0.0001)
}

func TestListAttractionReviews_GatewayFailureFailsRead(t *testing.T) {
	svc, reviews, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	gateway.err = utils.GatewayError{Err: context.DeadlineExceeded}

	require.NoError(t, reviews.Insert(&models.Review{
		ID:           uuid.NewString(),
		AttractionID: a.ID,
		UserID:       uuid.NewString(),
		AuthorName:   "Taras",
		Rating:       4,
		Text:         "Worth the trip.",
		OccurredAt:   time.Now(),
		Source:       models.SourceUser,
	}))

	_, err := svc.ListAttractionReviews(context.Background(), a.ID)
	var gatewayErr utils.GatewayError
	assert.ErrorAs(t, err, &gatewayErr, "stored reviews are not served as a fallback")
}

func TestListAttractionReviews_MalformedItemSkipped(t *testing.T) {
	svc, reviews, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	gateway.details["place-1"] = &places.PlaceDetails{
		PlaceID: "place-1",
		Reviews: []places.PlaceReview{
			providerReview("Olena", "Beautiful fountains.", 5, 1700000000),
			providerReview("Broken", "Rating out of range.", 0, 1700000100),
			providerReview("Blank", "   ", 4, 1700000200),
		},
	}

	got, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Olena", got[0].AuthorName)
	assert.Equal(t, 1, reviews.count())

	rating := attractions.rating(a.ID)
	require.NotNil(t, rating)
	assert.InDelta(t, 5.0, *rating, 0.0001)
}

func TestListAttractionReviews_EmptySetKeepsRating(t *testing.T) {
	svc, _, attractions, _, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	require.NoError(t, attractions.SetRating(a.ID, 4.2))
	gateway.details["place-1"] = &places.PlaceDetails{PlaceID: "place-1"}

	got, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	rating := attractions.rating(a.ID)
	require.NotNil(t, rating)
	assert.InDelta(t, 4.2, *rating, 0.0001, "an empty review set must not clear the cached rating")
}

func TestListAttractionReviews_MergesUserAndExternal(t *testing.T) {
	svc, _, attractions, users, gateway := newTestService()
	a := seedAttraction(t, attractions, "place-1")
	author := &models.User{ID: uuid.NewString(), Name: "Taras", Email: "taras@example.com"}
	require.NoError(t, users.Create(author))
	gateway.details["place-1"] = &places.PlaceDetails{
		PlaceID: "place-1",
		Reviews: []places.PlaceReview{
			providerReview("Olena", "Beautiful fountains.", 5, 1700000000),
			providerReview("Dmytro", "Crowded on weekends.", 4, 1700000100),
		},
	}

	_, err := svc.CreateReview(context.Background(), author.ID, a.ID, 3, "Expected more.")
	require.NoError(t, err)

	got, err := svc.ListAttractionReviews(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	rating := attractions.rating(a.ID)
	require.NotNil(t, rating)
	assert.InDelta(t, 4.0, *rating, 0.0001, "mean of 3, 5 and 4")
}
