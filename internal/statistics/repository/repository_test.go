package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	registrationModel "github.com/festy23/innov8x/internal/registration/model"
	sponsorshipModel "github.com/festy23/innov8x/internal/sponsorship/model"
	"github.com/festy23/innov8x/internal/statistics/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func seedTeam(t *testing.T, db *gorm.DB, id string, size int, roles ...string) {
	t.Helper()
	now := time.Now()
	reg := registrationModel.Registration{
		ID:         id,
		TeamName:   "team " + id,
		TeamKey:    "team " + id,
		TeamSize:   size,
		AgreeTerms: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, role := range roles {
		reg.Members = append(reg.Members, registrationModel.Member{
			ID:        fmt.Sprintf("%s-m%d", id, i),
			Position:  i + 1,
			FirstName: "First",
			LastName:  "Last",
			Email:     fmt.Sprintf("%s-%d@example.com", id, i),
			Role:      role,
			CreatedAt: now,
		})
	}
	require.NoError(t, db.Create(&reg).Error)
}

func TestRepository_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	totals, err := repo.GetTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Totals{}, *totals)

	byRole, err := repo.GetMembersByRole(ctx)
	require.NoError(t, err)
	assert.NotNil(t, byRole)
	assert.Empty(t, byRole)

	bySize, err := repo.GetTeamsBySize(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bySize)
	assert.Empty(t, bySize)
}

func TestRepository_Counts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	seedTeam(t, db, "a", 2, "developer", "designer")
	seedTeam(t, db, "b", 4, "developer", "developer", "other")
	seedTeam(t, db, "c", 2, "product-manager")

	now := time.Now()
	require.NoError(t, db.Create(&sponsorshipModel.Inquiry{
		ID: "i1", Name: "Ada", Email: "ada@example.com", Company: "AE", CreatedAt: now, UpdatedAt: now,
	}).Error)

	totals, err := repo.GetTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Totals{Teams: 3, Members: 6, SponsorInquiries: 1}, *totals)

	byRole, err := repo.GetMembersByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.RoleCount{
		{Role: "developer", Count: 3},
		{Role: "designer", Count: 1},
		{Role: "other", Count: 1},
		{Role: "product-manager", Count: 1},
	}, byRole)

	bySize, err := repo.GetTeamsBySize(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.SizeCount{
		{TeamSize: 2, Count: 2},
		{TeamSize: 4, Count: 1},
	}, bySize)
}

func TestRepository_DatabaseError(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.GetTotals(context.Background())
	assert.Error(t, err)
	_, err = repo.GetMembersByRole(context.Background())
	assert.Error(t, err)
	_, err = repo.GetTeamsBySize(context.Background())
	assert.Error(t, err)
}
