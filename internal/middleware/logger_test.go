package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestRouter(logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(logger))
	r.GET("/register", func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})
	r.GET("/api/registrations/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.POST("/api/registrations", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
	r.GET("/static/site.css", func(c *gin.Context) {
		c.String(http.StatusOK, "body{}")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		level  zapcore.Level
	}{
		{"page", http.MethodGet, "/register", zapcore.InfoLevel},
		{"client error", http.MethodGet, "/api/registrations/missing", zapcore.WarnLevel},
		{"server error", http.MethodPost, "/api/registrations", zapcore.ErrorLevel},
		{"static asset", http.MethodGet, "/static/site.css", zapcore.DebugLevel},
		{"health check", http.MethodGet, "/health", zapcore.DebugLevel},
		{"unknown route", http.MethodGet, "/static/missing.css", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := setupTestRouter(zap.New(core).Sugar())

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.level, entries[0].Level)
				assert.Equal(t, "HTTP request", entries[0].Message)
			}
		})
	}
}

func TestLogger_IncludesRequestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := setupTestRouter(zap.New(core).Sugar())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/register?utm=mail", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(w, req)

	entries := logs.All()
	if !assert.Len(t, entries, 1) {
		return
	}
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "utm=mail", fields["query"])
	assert.Equal(t, "/register", fields["path"])
	assert.Equal(t, "test-agent", fields["user_agent"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, int64(len("form")), fields["size"])
	assert.NotContains(t, fields, "route")
}

func TestLogger_IncludesRouteTemplate(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := setupTestRouter(zap.New(core).Sugar())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/registrations/abc", nil))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "/api/registrations/:id", entries[0].ContextMap()["route"])
	}
}
