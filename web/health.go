package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the dependencies every request path needs
// are reachable, so probes can pull a broken instance out of rotation.
type HealthHandler struct {
	db  *gorm.DB
	rdb redis.Cmdable
	log loggerv2.Logger
}

var _ Handler = (*HealthHandler)(nil)

func NewHealthHandler(db *gorm.DB, rdb redis.Cmdable, log loggerv2.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		rdb: rdb,
		log: log,
	}
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/health", h.HealthCheck)
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	components := gin.H{"db": "up", "redis": "up"}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		components["db"] = "down"
		healthy = false
		h.log.ErrorContext(ctx, "health check db ping failed", logger.Error(err))
	}

	if err := h.rdb.Ping(ctx).Err(); err != nil {
		components["redis"] = "down"
		healthy = false
		h.log.ErrorContext(ctx, "health check redis ping failed", logger.Error(err))
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, components)
}
