package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"hello-api-go/internal/clock"
	"hello-api-go/internal/middleware"
	"hello-api-go/internal/testutil"
)

type stubManager struct {
	err   error
	calls int
}

func (s *stubManager) Run(ctx context.Context) error {
	s.calls++
	return s.err
}

type countingRecorder struct {
	served int
}

func (r *countingRecorder) GreetingServed() {
	r.served++
}

func newTestRouter(h *HelloHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(h.logger))
	router.GET("/api/hello.json", h.Hello)
	router.GET("/api/health", NewHealthHandler().HealthCheck)
	return router
}

func TestHelloReturnsGreeting(t *testing.T) {
	logger, _ := testutil.NewCapturingLogger(zapcore.InfoLevel)
	mgr := &stubManager{}
	recorder := &countingRecorder{}
	router := newTestRouter(NewHelloHandler(mgr, clock.FixedClock(1717000000123), recorder, logger))

	req := httptest.NewRequest(http.MethodGet, "/api/hello.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"data":{"message":"Hello World~","timestamp":"1717000000123"}}`, w.Body.String())
	assert.Equal(t, 1, mgr.calls)
	assert.Equal(t, 1, recorder.served)
}

func TestHelloLogsUtilityBeforeController(t *testing.T) {
	logger, logCapture := testutil.NewCapturingLogger(zapcore.InfoLevel)
	router := newTestRouter(NewHelloHandler(&stubManager{}, clock.NewMonotonicClock(), nil, logger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	utilityAt := logCapture.IndexOf("Utility invoked")
	controllerAt := logCapture.IndexOf("Hello controller invoked")
	require.NotEqual(t, -1, utilityAt)
	require.NotEqual(t, -1, controllerAt)
	assert.Less(t, utilityAt, controllerAt)
}

func TestHelloManagerFailureReturns500(t *testing.T) {
	logger, logCapture := testutil.NewCapturingLogger(zapcore.InfoLevel)
	recorder := &countingRecorder{}
	mgr := &stubManager{err: errors.New("core service failed: store unavailable")}
	router := newTestRouter(NewHelloHandler(mgr, clock.FixedClock(1), recorder, logger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello.json", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Internal server error", response["error"])
	assert.Equal(t, float64(500), response["status"])
	assert.Equal(t, 0, recorder.served)
	assert.False(t, logCapture.Contains("Hello controller invoked"))
	assert.True(t, logCapture.Contains("Request failed"))
}

func TestHealthCheck(t *testing.T) {
	logger, _ := testutil.NewCapturingLogger(zapcore.InfoLevel)
	router := newTestRouter(NewHelloHandler(&stubManager{}, clock.FixedClock(1), nil, logger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"Hello API is healthy"}`, w.Body.String())
}
