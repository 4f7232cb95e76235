package middleware

import (
	"bytes"
	"context"
	"log/slog"

	"gavel/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

// IdempotencyRecorder is the replay store behind the guard.
type IdempotencyRecorder interface {
	Get(ctx context.Context, key string) (*cache.StoredResponse, error)
	Set(ctx context.Context, key string, resp cache.StoredResponse) error
}

type IdempotencyMiddleware struct {
	store IdempotencyRecorder
}

func NewIdempotencyMiddleware(store IdempotencyRecorder) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{
		store: store,
	}
}

// captureWriter buffers the response body so a successful outcome can be
// recorded after the handler runs.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Guard replays the recorded response for a key seen before. Requests
// without a key pass through untouched. The check and the record are two
// separate cache operations, so two concurrent requests with the same key
// can both reach the handler; the price conflict check downstream keeps
// that window harmless.
func (m *IdempotencyMiddleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		recorded, err := m.store.Get(c.Request.Context(), key)
		if err != nil {
			// Treat a broken cache as a miss; the request still runs once here.
			slog.Warn("Idempotency lookup failed", "key", key, "error", err.Error())
		}
		if recorded != nil {
			c.Header("Idempotency-Replayed", "true")
			c.Data(recorded.StatusCode, "application/json", recorded.Data)
			c.Abort()
			return
		}

		writer := &captureWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		record := cache.StoredResponse{
			StatusCode: status,
			Data:       bytes.Clone(writer.body.Bytes()),
		}
		if err := m.store.Set(c.Request.Context(), key, record); err != nil {
			slog.Warn("Failed to record idempotent response", "key", key, "error", err.Error())
		}
	}
}
