package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a repository over the users collection of db.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return NewMongoUserRepoWithCollection(db.Collection(database.UsersCollection))
}

// NewMongoUserRepoWithCollection creates a repository over coll.
func NewMongoUserRepoWithCollection(coll *mongo.Collection) *MongoUserRepo {
	return &MongoUserRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetAll retrieves every user document.
func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.GetByEmailWithProjection(ctx, email, nil)
}

// GetByEmailWithProjection retrieves a user by its email using a projection.
func (r *MongoUserRepo) GetByEmailWithProjection(ctx context.Context, email string, projection bson.M) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// Upsert applies fields with $set, stamping updatedAt and createdAt on insert.
func (r *MongoUserRepo) Upsert(ctx context.Context, email string, fields bson.M) (*models.WriteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["email"] = email
	set["updatedAt"] = now

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)

	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user with email %s: %w", email, err)
	}
	return toWriteResult(result), nil
}

// SetRole updates the role of the user with email.
func (r *MongoUserRepo) SetRole(ctx context.Context, email, role string) (*models.WriteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update role for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}
	return toWriteResult(result), nil
}

func toWriteResult(result *mongo.UpdateResult) *models.WriteResult {
	return &models.WriteResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}
}
