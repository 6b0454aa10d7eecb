package user

import (
	"context"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
)

type UserService interface {
	// Sign-in
	Upsert(ctx context.Context, email string, fields map[string]any) (*AuthResponse, error)

	// Roles
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, email string) (*models.WriteResult, error)
	SeedAdmins(ctx context.Context, emails []string) error

	// Admin / Utility
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// TokenIssuer signs access tokens for a user email.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
	// RoleCache is optional; when nil every role lookup hits the database.
	RoleCache    *redis.Client
	RoleCacheTTL time.Duration
}

// AuthResponse is returned by sign-in: the write acknowledgement and a token.
type AuthResponse struct {
	Result *models.WriteResult `json:"result"`
	Token  string              `json:"token"`
}
