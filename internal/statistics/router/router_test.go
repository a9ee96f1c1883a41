package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	registrationModel "github.com/festy23/innov8x/internal/registration/model"
	sponsorshipModel "github.com/festy23/innov8x/internal/sponsorship/model"
	"github.com/festy23/innov8x/internal/statistics/model"
)

func TestRegisterRoutes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&registrationModel.Registration{},
		&registrationModel.Member{},
		&sponsorshipModel.Inquiry{},
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, zap.NewNop().Sugar())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/statistics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Teams)
	assert.NotNil(t, resp.MembersByRole)
	assert.NotNil(t, resp.TeamsBySize)
}
