package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Upstream  bool      `json:"upstream"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, upstreamURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		client := &http.Client{Timeout: 5 * time.Second}
		ctx := context.Background()

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil

			upstreamHealthy := false
			if resp, err := client.Get(upstreamURL); err == nil {
				resp.Body.Close()
				upstreamHealthy = resp.StatusCode < http.StatusInternalServerError
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				Upstream:  upstreamHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
