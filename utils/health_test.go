package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestHealthMonitorCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	monitor := NewHealthMonitor(nil, client)
	status := monitor.Check(context.Background())
	assert.True(t, status.Redis)
	assert.False(t, status.Mongo)
	assert.Equal(t, status, monitor.Status())

	mr.Close()
	status = monitor.Check(context.Background())
	assert.False(t, status.Redis)
}
