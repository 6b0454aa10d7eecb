package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// protectedFields cannot be written through the sign-in upsert.
var protectedFields = map[string]struct{}{
	"_id":       {},
	"email":     {},
	"role":      {},
	"createdAt": {},
	"updatedAt": {},
}

// Upsert stores the profile fields for email and issues an access token.
func (s *DefaultUserService) Upsert(ctx context.Context, email string, fields map[string]any) (*AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	set := bson.M{}
	for k, v := range fields {
		if _, blocked := protectedFields[k]; blocked || strings.HasPrefix(k, "$") {
			continue
		}
		set[k] = v
	}

	result, err := s.Repo.Upsert(ctx, email, set)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Result: result, Token: token}, nil
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether email belongs to an admin. Unknown users are not
// admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.role(ctx, email)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// MakeAdmin promotes an existing user and drops any cached role.
func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (*models.WriteResult, error) {
	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to make admin: %w", err)
	}
	s.invalidateRole(ctx, email)
	utils.GetLogger().Info("user promoted to admin", zap.String("email", email))
	return result, nil
}

// SeedAdmins creates (if needed) and promotes each configured admin email.
func (s *DefaultUserService) SeedAdmins(ctx context.Context, emails []string) error {
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if _, err := s.Repo.Upsert(ctx, email, bson.M{"role": models.RoleAdmin}); err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", email, err)
		}
		s.invalidateRole(ctx, email)
	}
	return nil
}
