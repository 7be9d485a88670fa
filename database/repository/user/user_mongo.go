package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.Collection("users")
	repo := &MongoUserRepo{coll: coll}

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
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "user", ID: id}
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch user %s: %w", id, err)}
	}
	return &user, nil
}

// GetByEmail retrieves a user by its email address, or nil when absent.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.StoreError{Err: fmt.Errorf("fetch user by email: %w", err)}
	}
	return &user, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: "a user with this email already exists"}
		}
		return utils.StoreError{Err: fmt.Errorf("insert user: %w", err)}
	}
	return nil
}

// AddFavorite adds an attraction id to the user's favorites set.
func (r *MongoUserRepo) AddFavorite(userID, attractionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"favorites": attractionID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("add favorite for user %s: %w", userID, err)}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "user", ID: userID}
	}
	return nil
}

// RemoveFavorite removes an attraction id from the user's favorites set.
func (r *MongoUserRepo) RemoveFavorite(userID, attractionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"favorites": attractionID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return utils.StoreError{Err: fmt.Errorf("remove favorite for user %s: %w", userID, err)}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "user", ID: userID}
	}
	return nil
}
