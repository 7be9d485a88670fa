package models

import "time"

// ReviewSource identifies where a review originated.
type ReviewSource string

const (
	// SourceUser marks reviews submitted through the API by an account.
	SourceUser ReviewSource = "user"
	// SourceExternal marks reviews ingested from the places provider.
	SourceExternal ReviewSource = "external"
)

// Review is one opinion about one attraction. Author fields are snapshots
// taken at creation time, not live references.
type Review struct {
	ID           string       `json:"id" bson:"id"`
	AttractionID string       `json:"attractionId" bson:"attraction_id"`
	UserID       string       `json:"userId,omitempty" bson:"user_id,omitempty"`
	AuthorName   string       `json:"authorName" bson:"author_name"`
	AuthorPhoto  string       `json:"authorPhotoUrl,omitempty" bson:"author_photo_url,omitempty"`
	Rating       int          `json:"rating" bson:"rating"`
	Text         string       `json:"text" bson:"text"`
	OccurredAt   time.Time    `json:"occurredAt" bson:"occurred_at"`
	Source       ReviewSource `json:"source" bson:"source"`

	// ExternalKey is set only on externally sourced reviews. The provider
	// exposes no stable review id, so the key is derived from the place id,
	// the provider timestamp and the author name. Unique per attraction.
	ExternalKey        string `json:"-" bson:"external_key,omitempty"`
	Language           string `json:"language,omitempty" bson:"language,omitempty"`
	ExternalProfileURL string `json:"externalProfileUrl,omitempty" bson:"external_profile_url,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
