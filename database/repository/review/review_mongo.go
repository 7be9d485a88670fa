package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"mandry/database"
	"mandry/models"
	"mandry/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "review", ID: id}
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch review %s: %w", id, err)}
	}
	return &review, nil
}

// FindByAttraction retrieves all reviews for an attraction, newest occurredAt first.
func (r *MongoReviewRepo) FindByAttraction(attractionID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"attraction_id": attractionID}, opts)
	if err != nil {
		return nil, utils.StoreError{Err: fmt.Errorf("list reviews for attraction %s: %w", attractionID, err)}
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, utils.StoreError{Err: fmt.Errorf("decode review: %w", err)}
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// FindByExternalKey retrieves an external review by its dedup key, or nil when absent.
func (r *MongoReviewRepo) FindByExternalKey(externalKey, attractionID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"external_key": externalKey, "attraction_id": attractionID}
	var review models.Review
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch review by external key: %w", err)}
	}
	return &review, nil
}

// FindUserReview retrieves a user's own review on an attraction, or nil when absent.
func (r *MongoReviewRepo) FindUserReview(userID, attractionID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"user_id":       userID,
		"attraction_id": attractionID,
		"source":        models.SourceUser,
	}
	var review models.Review
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch user review: %w", err)}
	}
	return &review, nil
}

// Insert stores a new review document. The unique indexes make the
// check-and-insert atomic: a concurrent duplicate surfaces as ConflictError.
func (r *MongoReviewRepo) Insert(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: "review already exists"}
		}
		return utils.StoreError{Err: fmt.Errorf("insert review: %w", err)}
	}
	return nil
}

// UpdateContent modifies the rating and text of an existing review.
func (r *MongoReviewRepo) UpdateContent(id string, rating int, text string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":     rating,
		"text":       text,
		"updated_at": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("update review %s: %w", id, err)}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "review", ID: id}
	}
	return nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("delete review %s: %w", id, err)}
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "review", ID: id}
	}
	return nil
}
