package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is anything that can report whether its backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

type healthHandler struct {
	storage Pinger
	redis   *redis.Client
}

// health pings storage and, when configured, redis. Any failure turns the answer into a 503.
func (h *healthHandler) health(c *gin.Context) {
	ctx := c.Request.Context()
	services := make(map[string]string)
	status := statusHealthy

	if h.storage != nil {
		if err := h.storage.Ping(ctx); err != nil {
			services["storage"] = statusUnhealthy
			status = statusUnhealthy
		} else {
			services["storage"] = statusHealthy
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			services["redis"] = statusUnhealthy
			status = statusUnhealthy
		} else {
			services["redis"] = statusHealthy
		}
	}

	code := http.StatusOK
	if status == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{Status: status, Services: services})
}
