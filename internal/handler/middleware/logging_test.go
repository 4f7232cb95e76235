//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"gavel/internal/handler/middleware"
	"gavel/internal/pkg/config"
	commonhttp "gavel/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testLogConfig() config.LogConfig {
	return config.LogConfig{
		Level:      "error",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02 15:04:05.000",
	}
}

func TestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(nil, testLogConfig()))

	var requestID string
	engine.GET("/ping", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := commonhttp.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, requestID)
}

func TestLoggingMiddleware_DistinctRequestIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(nil, testLogConfig()))

	var ids []string
	engine.GET("/ping", func(c *gin.Context) {
		ids = append(ids, middleware.GetRequestID(c))
		c.Status(http.StatusOK)
	})

	commonhttp.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "")
	commonhttp.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "")

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}
