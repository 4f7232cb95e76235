//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"gavel/internal/handler/middleware"
	"gavel/internal/infra/cache"
	commonhttp "gavel/tests/common/httptest"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeRecorder is a map-backed replay store with injectable failures.
type fakeRecorder struct {
	records map[string]cache.StoredResponse
	getErr  error
	setErr  error
	sets    int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{records: map[string]cache.StoredResponse{}}
}

func (f *fakeRecorder) Get(_ context.Context, key string) (*cache.StoredResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	resp, ok := f.records[key]
	if !ok {
		return nil, nil
	}
	return &resp, nil
}

func (f *fakeRecorder) Set(_ context.Context, key string, resp cache.StoredResponse) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.records[key] = resp
	return nil
}

func newIdempotencyRouter(store middleware.IdempotencyRecorder, status int, calls *atomic.Int32) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	guard := middleware.NewIdempotencyMiddleware(store)
	engine.POST("/bids", guard.Guard(), func(c *gin.Context) {
		calls.Add(1)
		c.JSON(status, gin.H{"call": calls.Load()})
	})
	return engine
}

func TestIdempotencyGuard_PassThroughWithoutKey(t *testing.T) {
	store := newFakeRecorder()
	var calls atomic.Int32
	router := newIdempotencyRouter(store, http.StatusCreated, &calls)

	first := commonhttp.PerformRequest(t, router, http.MethodPost, "/bids", nil, "")
	second := commonhttp.PerformRequest(t, router, http.MethodPost, "/bids", nil, "")

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, int32(2), calls.Load())
	assert.Zero(t, store.sets)
}

func TestIdempotencyGuard_ReplaysRecordedResponse(t *testing.T) {
	store := newFakeRecorder()
	var calls atomic.Int32
	router := newIdempotencyRouter(store, http.StatusCreated, &calls)
	headers := map[string]string{"Idempotency-Key": "req-1"}

	first := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "", headers)
	second := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "", headers)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, int32(1), calls.Load(), "handler must run only once per key")
	assert.Empty(t, first.Header().Get("Idempotency-Replayed"))
	assert.Equal(t, "true", second.Header().Get("Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyGuard_DistinctKeysRunIndependently(t *testing.T) {
	store := newFakeRecorder()
	var calls atomic.Int32
	router := newIdempotencyRouter(store, http.StatusCreated, &calls)

	first := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "",
		map[string]string{"Idempotency-Key": "req-1"})
	second := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "",
		map[string]string{"Idempotency-Key": "req-2"})

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotencyGuard_DoesNotRecordFailures(t *testing.T) {
	store := newFakeRecorder()
	var calls atomic.Int32
	router := newIdempotencyRouter(store, http.StatusConflict, &calls)
	headers := map[string]string{"Idempotency-Key": "req-1"}

	first := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "", headers)
	second := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "", headers)

	assert.Equal(t, http.StatusConflict, first.Code)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, int32(2), calls.Load(), "failed attempts may be retried")
	assert.Zero(t, store.sets)
}

func TestIdempotencyGuard_LookupFailureFallsThroughToHandler(t *testing.T) {
	store := newFakeRecorder()
	store.getErr = errors.New("redis down")
	var calls atomic.Int32
	router := newIdempotencyRouter(store, http.StatusCreated, &calls)
	headers := map[string]string{"Idempotency-Key": "req-1"}

	w := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "", headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, store.sets, "the outcome is still recorded for later replays")
}

func TestIdempotencyGuard_RecordFailureDoesNotChangeResponse(t *testing.T) {
	store := newFakeRecorder()
	store.setErr = errors.New("redis down")
	var calls atomic.Int32
	router := newIdempotencyRouter(store, http.StatusCreated, &calls)
	headers := map[string]string{"Idempotency-Key": "req-1"}

	w := commonhttp.PerformRequestWithHeaders(t, router, http.MethodPost, "/bids", nil, "", headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int32(1), calls.Load())
}
