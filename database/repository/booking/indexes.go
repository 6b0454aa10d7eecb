package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the lookup indexes and the unique slot index that
// prevents two bookings of the same slot of a treatment on one date.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "patient", Value: 1}}},
		{Keys: bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "patient", Value: 1}}},
		{
			Keys: bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("treatment_date_slot_unique"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
