package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a repository over the services collection of db.
func NewMongoServiceRepo(db *mongo.Database) *MongoServiceRepo {
	return NewMongoServiceRepoWithCollection(db.Collection(database.ServicesCollection))
}

// NewMongoServiceRepoWithCollection creates a repository over coll.
func NewMongoServiceRepoWithCollection(coll *mongo.Collection) *MongoServiceRepo {
	return &MongoServiceRepo{coll: coll}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// FindAll retrieves the whole catalog. Each call decodes fresh documents.
func (r *MongoServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// FindNames retrieves the catalog projected to {_id, name}.
func (r *MongoServiceRepo) FindNames(ctx context.Context) ([]models.ServiceName, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service names: %w", err)
	}
	defer cursor.Close(ctx)

	names := []models.ServiceName{}
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode service names: %w", err)
	}
	return names, nil
}

// FindByName retrieves a single service by its unique name.
func (r *MongoServiceRepo) FindByName(ctx context.Context, name string) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", name, err)
	}
	return &service, nil
}
