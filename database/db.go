package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names inside the portal database.
const (
	ServicesCollection = "services"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
)

// Connect opens a MongoDB client and pings it, retrying with a linear backoff
// up to attempts times. After a successful connect, the driver's server
// monitoring takes over reconnection.
func Connect(ctx context.Context, uri string, attempts int, logger *zap.Logger) (*mongo.Client, error) {
	if attempts < 1 {
		attempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	clientOptions := options.Client().
		ApplyURI(uri).
		SetRetryReads(true).
		SetRetryWrites(true).
		SetServerSelectionTimeout(10 * time.Second)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := connectOnce(ctx, clientOptions)
		if err == nil {
			logger.Info("Connected to MongoDB", zap.Int("attempt", attempt))
			return client, nil
		}
		lastErr = err
		logger.Warn("MongoDB connection attempt failed",
			zap.Int("attempt", attempt), zap.Int("maxAttempts", attempts), zap.Error(err))

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt*2) * time.Second):
		}
	}
	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", attempts, lastErr)
}

func connectOnce(ctx context.Context, clientOptions *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Disconnect closes the client, bounded by a short timeout.
func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
