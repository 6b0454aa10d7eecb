package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a repository over the bookings collection of db.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return NewMongoBookingRepoWithCollection(db.Collection(database.BookingsCollection))
}

// NewMongoBookingRepoWithCollection creates a repository over coll.
func NewMongoBookingRepoWithCollection(coll *mongo.Collection) *MongoBookingRepo {
	return &MongoBookingRepo{coll: coll}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"date": date})
}

func (r *MongoBookingRepo) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"patient": patient})
}

func (r *MongoBookingRepo) FindForPatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"treatment": treatment, "date": date, "patient": patient})
}

func (r *MongoBookingRepo) FindForSlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"treatment": treatment, "date": date, "slot": slot})
}

// Create inserts booking. A duplicate key on the slot index maps to ErrSlotTaken.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}
