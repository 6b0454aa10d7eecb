package userRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUserNotFound is returned when an update targets an unknown email.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by email with a projection.
	GetByEmailWithProjection(ctx context.Context, email string, projection bson.M) (*models.User, error)
	// Upsert sets fields on the user keyed by email, creating it if needed.
	Upsert(ctx context.Context, email string, fields bson.M) (*models.WriteResult, error)
	// SetRole sets the role of an existing user.
	SetRole(ctx context.Context, email, role string) (*models.WriteResult, error)
}
