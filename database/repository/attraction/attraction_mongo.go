package attractionRepo

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

// MongoAttractionRepo implements AttractionRepository using MongoDB.
type MongoAttractionRepo struct {
	coll *mongo.Collection
}

// NewMongoAttractionRepo creates a new instance of AttractionRepository using MongoDB.
func NewMongoAttractionRepo() AttractionRepository {
	coll := database.Collection("attractions")
	repo := &MongoAttractionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAttractionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{
			Keys: bson.D{{Key: "google_place_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"google_place_id": bson.M{"$type": "string"}},
			),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an attraction by its unique ID.
func (r *MongoAttractionRepo) GetByID(id string) (*models.Attraction, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var attraction models.Attraction
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&attraction); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "attraction", ID: id}
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch attraction %s: %w", id, err)}
	}
	return &attraction, nil
}

// GetByPlaceID retrieves the attraction linked to a place id, or nil when absent.
func (r *MongoAttractionRepo) GetByPlaceID(placeID string) (*models.Attraction, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var attraction models.Attraction
	if err := r.coll.FindOne(ctx, bson.M{"google_place_id": placeID}).Decode(&attraction); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch attraction by place id: %w", err)}
	}
	return &attraction, nil
}

// GetAll retrieves all attractions, optionally filtered by category.
func (r *MongoAttractionRepo) GetAll(category models.Category) ([]models.Attraction, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, utils.StoreError{Err: fmt.Errorf("list attractions: %w", err)}
	}
	defer cursor.Close(ctx)

	var attractions []models.Attraction
	for cursor.Next(ctx) {
		var a models.Attraction
		if err := cursor.Decode(&a); err != nil {
			return nil, utils.StoreError{Err: fmt.Errorf("decode attraction: %w", err)}
		}
		attractions = append(attractions, a)
	}
	return attractions, nil
}

// Create inserts a new attraction document.
func (r *MongoAttractionRepo) Create(attraction *models.Attraction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	attraction.CreatedAt = now
	attraction.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, attraction); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: "attraction already exists"}
		}
		return utils.StoreError{Err: fmt.Errorf("insert attraction: %w", err)}
	}
	return nil
}

// Update replaces an existing attraction document.
func (r *MongoAttractionRepo) Update(attraction *models.Attraction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	attraction.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": attraction.ID}, bson.M{"$set": attraction})
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("update attraction %s: %w", attraction.ID, err)}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "attraction", ID: attraction.ID}
	}
	return nil
}

// Delete removes an attraction document by its ID.
func (r *MongoAttractionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("delete attraction %s: %w", id, err)}
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "attraction", ID: id}
	}
	return nil
}

// SetRating persists a recomputed cached rating.
func (r *MongoAttractionRepo) SetRating(id string, rating float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"rating": rating, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("set rating on attraction %s: %w", id, err)}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "attraction", ID: id}
	}
	return nil
}

// AppendImage adds an uploaded photo URL to the attraction.
func (r *MongoAttractionRepo) AppendImage(id string, imageURL string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": imageURL},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("append image to attraction %s: %w", id, err)}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "attraction", ID: id}
	}
	return nil
}
