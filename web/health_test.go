package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// unreachableDeps builds a gorm handle and a redis client that point at a
// closed local port without dialing at construction time.
func unreachableDeps(t *testing.T) (*gorm.DB, redis.Cmdable) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "noders:noders@tcp(127.0.0.1:1)/noders",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db, redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func TestHealthCheckReportsDownDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, rdb := unreachableDeps(t)
	h := NewHealthHandler(db, rdb, loggerv2.NewZapContextLogger(zap.NewNop()))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.HealthCheck(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"down"`)
	assert.Contains(t, w.Body.String(), `"redis":"down"`)
}
