package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest health snapshot of MongoDB and Redis.
type HealthMonitor struct {
	mongo *mongo.Client
	redis *redis.Client

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor. The Redis client may be nil.
func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client) *HealthMonitor {
	return &HealthMonitor{mongo: mongoClient, redis: redisClient}
}

// Status returns the latest stored snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check pings every dependency once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if h.mongo != nil {
		status.Mongo = h.mongo.Ping(ctx, nil) == nil
	}
	if h.redis != nil {
		status.Redis = h.redis.Ping(ctx).Err() == nil
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start runs Check every interval until ctx is cancelled.
func (h *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	h.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
