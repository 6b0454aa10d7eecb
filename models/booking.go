package models

import "time"

// Booking is a patient's reservation of one slot of one service on one date.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	Patient     string    `bson:"patient" json:"patient"` // patient email
	PatientName string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Treatment   string    `bson:"treatment" json:"treatment"` // Service.Name
	Date        string    `bson:"date" json:"date"`           // opaque, matched by equality
	Slot        string    `bson:"slot" json:"slot"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the inbound payload for POST /booking.
type BookingRequest struct {
	Patient     string `json:"patient" binding:"required,email"`
	PatientName string `json:"patientName"`
	Treatment   string `json:"treatment" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Slot        string `json:"slot" binding:"required"`
	Phone       string `json:"phone"`
}
