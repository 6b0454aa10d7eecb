package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// noRole marks a cached lookup for a user without a role or without an account.
const noRole = "-"

func roleCacheKey(email string) string {
	return utils.RoleCachePrefix + email
}

// role resolves the role of email, consulting the cache first. Cache errors
// fall back to the database.
func (s *DefaultUserService) role(ctx context.Context, email string) (string, error) {
	logger := utils.GetLogger()
	key := roleCacheKey(email)

	if s.RoleCache != nil {
		cached, err := s.RoleCache.Get(ctx, key).Result()
		switch {
		case err == nil:
			if cached == noRole {
				return "", nil
			}
			return cached, nil
		case !errors.Is(err, redis.Nil):
			logger.Warn("role cache read failed, falling back to database", zap.Error(err))
		}
	}

	u, err := s.Repo.GetByEmailWithProjection(ctx, email, bson.M{"email": 1, "role": 1})
	if err != nil {
		return "", fmt.Errorf("failed to look up role: %w", err)
	}
	role := ""
	if u != nil {
		role = u.Role
	}

	if s.RoleCache != nil {
		value := role
		if value == "" {
			value = noRole
		}
		if err := s.RoleCache.Set(ctx, key, value, s.cacheTTL()).Err(); err != nil {
			logger.Warn("role cache write failed", zap.Error(err))
		}
	}
	return role, nil
}

func (s *DefaultUserService) invalidateRole(ctx context.Context, email string) {
	if s.RoleCache == nil {
		return
	}
	if err := s.RoleCache.Del(ctx, roleCacheKey(email)).Err(); err != nil {
		utils.GetLogger().Warn("role cache invalidation failed",
			zap.String("email", email), zap.Error(err))
	}
}

func (s *DefaultUserService) cacheTTL() time.Duration {
	if s.RoleCacheTTL <= 0 {
		return 5 * time.Minute
	}
	return s.RoleCacheTTL
}
