package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *mongo.Database) *MongoDoctorRepo {
	return NewMongoDoctorRepoWithCollection(db.Collection(database.DoctorsCollection))
}

func NewMongoDoctorRepoWithCollection(coll *mongo.Collection) *MongoDoctorRepo {
	return &MongoDoctorRepo{coll: coll}
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) (*models.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateDoctor
		}
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return &models.WriteResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (r *MongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to delete doctor with email %s: %w", email, err)
	}
	return &models.WriteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

// EnsureIndexes makes doctor emails unique.
func (r *MongoDoctorRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create doctor indexes: %w", err)
	}
	return nil
}
