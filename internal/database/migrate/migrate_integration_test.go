//go:build integration

package migrate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("innov8x"),
		postgres.WithUsername("innov8x"),
		postgres.WithPassword("innov8x"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestMigrate_Postgres(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "")
	db := startPostgres(t)

	version, err := Migrate(db)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)

	for _, table := range []string{"team_registrations", "team_members", "sponsor_inquiries"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}

	t.Run("second run is a no-op", func(t *testing.T) {
		version, err := Migrate(db)
		require.NoError(t, err)
		assert.Equal(t, uint(2), version)
	})

	t.Run("team key is unique", func(t *testing.T) {
		insert := `INSERT INTO team_registrations (id, team_name, team_key, team_size, agree_terms) VALUES (?, ?, ?, ?, ?)`
		require.NoError(t, db.Exec(insert, "a", "Null Pointers", "null pointers", 3, true).Error)
		assert.Error(t, db.Exec(insert, "b", "NULL POINTERS", "null pointers", 3, true).Error)
	})

	t.Run("team size is constrained", func(t *testing.T) {
		insert := `INSERT INTO team_registrations (id, team_name, team_key, team_size, agree_terms) VALUES (?, ?, ?, ?, ?)`
		assert.Error(t, db.Exec(insert, "c", "Solo", "solo", 1, true).Error)
	})

	t.Run("members cascade with registration", func(t *testing.T) {
		require.NoError(t, db.Exec(
			`INSERT INTO team_members (id, registration_id, position, first_name, last_name, email, role) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			"m1", "a", 0, "Ada", "Lovelace", "ada@example.com", "developer").Error)
		require.NoError(t, db.Exec(`DELETE FROM team_registrations WHERE id = ?`, "a").Error)

		var count int64
		require.NoError(t, db.Table("team_members").Where("registration_id = ?", "a").Count(&count).Error)
		assert.Zero(t, count)
	})
}
