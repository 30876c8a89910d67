package gintool

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
)

func TestContextMiddlewareAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/GetProfile", nil)
	c.Request.Header.Set(constants.HeaderRequestIDKey, "req-42")

	ContextMiddleware()(c)

	fields, ok := c.Request.Context().Value(loggerv2.FieldsKey).([]logger.Field)
	require.True(t, ok, "logger fields should be on the request context")
	assert.Len(t, fields, 1)
}

func TestContextMiddlewareWithoutRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/GetProfile", nil)

	ContextMiddleware()(c)

	fields, ok := c.Request.Context().Value(loggerv2.FieldsKey).([]logger.Field)
	require.True(t, ok)
	assert.Empty(t, fields)
}
