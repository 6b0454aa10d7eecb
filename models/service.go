package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable treatment with a fixed menu of time slots. Any other
// stored field (description, price, img, ...) is kept in Extra.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Slots []string           `bson:"slots"`
	Extra bson.M             `bson:",inline"`
}

// ServiceName is the projected form returned by the catalog listing.
type ServiceName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// AvailabilityResult is a service whose Slots only holds the slots still free
// on the requested date. Other service fields pass through unchanged.
type AvailabilityResult struct {
	ID    primitive.ObjectID
	Name  string
	Slots []string
	Extra bson.M
}

func (r AvailabilityResult) MarshalJSON() ([]byte, error) {
	return marshalWithExtras(struct {
		ID    *primitive.ObjectID `json:"_id,omitempty"`
		Name  string              `json:"name"`
		Slots []string            `json:"slots"`
	}{idPtr(r.ID), r.Name, r.Slots}, r.Extra)
}
