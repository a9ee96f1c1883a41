package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/middleware"
	"github.com/festy23/innov8x/internal/ratelimit"
	"github.com/festy23/innov8x/internal/sponsorship/model"
	"github.com/festy23/innov8x/internal/web"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	return setupLimitedRouter(t, nil)
}

func setupLimitedRouter(t *testing.T, limiter *middleware.RateLimiter) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Inquiry{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, web.Install(r))
	RegisterRoutes(r, db, Options{Logger: zaptest.NewLogger(t).Sugar(), EventName: "Innov8X", RateLimiter: limiter})
	return r, db
}

func TestIntegration_SubmitAndFetch(t *testing.T) {
	r, db := setupRouter(t)
	body := `{"name":"Ada","email":"ada@example.com","company":"Analytical Engines"}`

	submit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/sponsorships", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := submit()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = submit()
	require.Equal(t, http.StatusOK, w.Code)
	var again model.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, created.ReferenceID, again.ReferenceID)

	var count int64
	require.NoError(t, db.Model(&model.Inquiry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sponsorships/"+created.ReferenceID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.InquiryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Analytical Engines", fetched.Company)
	assert.Empty(t, fetched.Message)
}

func TestIntegration_Page(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sponsor", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sponsorship Inquiry")
}

func TestIntegration_PageRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	limiter := middleware.NewRateLimiter(ratelimit.New(client, 1, time.Minute), true, zaptest.NewLogger(t).Sugar())

	r, db := setupLimitedRouter(t, limiter)

	post := func(key string) *httptest.ResponseRecorder {
		values := url.Values{
			"submission_key": {key},
			"name":           {"Ada"},
			"email":          {"ada@example.com"},
			"company":        {"Analytical Engines"},
		}
		req := httptest.NewRequest(http.MethodPost, "/sponsor", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, post("key-1").Code)

	w := post("key-2")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Too many submissions")
	assert.Contains(t, w.Body.String(), `value="Analytical Engines"`)

	var count int64
	require.NoError(t, db.Model(&model.Inquiry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
