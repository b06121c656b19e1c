package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiorent/internal/domain"
)

// Connect must be usable out of the box with a bare SQLite path, which
// needs the driver registered under the name it is opened with.
func TestConnectSQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "studios", "bookings", "favorites", "reviews"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	u := domain.User{Username: "a", Email: "a@b.c", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	assert.NotZero(t, u.ID)
}
