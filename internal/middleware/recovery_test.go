package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func setupRecoveryRouter(logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(logger))
	r.GET("/register", func(c *gin.Context) {
		panic("template missing")
	})
	r.POST("/api/registrations", func(c *gin.Context) {
		panic("nil service")
	})
	r.GET("/api/countdown/stream", func(c *gin.Context) {
		c.SSEvent("countdown", "1")
		c.Writer.Flush()
		panic("stream broke")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestRecovery_Responses(t *testing.T) {
	router := setupRecoveryRouter(zaptest.NewLogger(t).Sugar())

	t.Run("api request gets json error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/registrations", nil)
		req.Header.Set("Accept", "text/html,application/json")

		assert.NotPanics(t, func() { router.ServeHTTP(w, req) })

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`, w.Body.String())
	})

	t.Run("browser page gets html error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/register", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Something went wrong")
	})

	t.Run("page without html accept gets json", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})

	t.Run("started stream is left as is", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/countdown/stream", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "event:countdown")
		assert.NotContains(t, w.Body.String(), "INTERNAL_ERROR")
	})

	t.Run("normal request works", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRecovery_LogsPanicWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := setupRecoveryRouter(zap.New(core).Sugar())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.FilterMessage("panic recovered").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "template missing", entries[0].ContextMap()["error"])
	}
}
