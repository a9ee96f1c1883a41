// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	redis  redis.Cmdable
	logger *zap.SugaredLogger
}

// New creates a new health handler instance. A nil redis client skips the
// rate limiter store check.
func New(db *gorm.DB, redisClient redis.Cmdable, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{
		db:     db,
		redis:  redisClient,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
	Pool       *PoolStats        `json:"pool,omitempty"`
}

// PoolStats summarizes the database connection pool.
type PoolStats struct {
	Open         int   `json:"open"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"wait_count"`
	MaxOpenConns int   `json:"max_open"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	components := map[string]string{"database": "ok"}
	healthy := true

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("database health check failed", "error", err)
		components["database"] = "unavailable"
		healthy = false
	}

	if h.redis != nil {
		components["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Warnw("redis health check failed", "error", err)
			components["redis"] = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy", Components: components})
		return
	}

	resp := Response{Status: "ok", Components: components}
	if stats, err := database.GetStats(h.db); err == nil {
		resp.Pool = &PoolStats{
			Open:         stats.OpenConnections,
			InUse:        stats.InUse,
			Idle:         stats.Idle,
			WaitCount:    stats.WaitCount,
			MaxOpenConns: stats.MaxOpenConnections,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the health endpoint.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/health", h.Check)
}
