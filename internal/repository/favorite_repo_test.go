package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studiorent/internal/database"
	"studiorent/internal/domain"
)

func setupFavorites(t *testing.T) (*FavoriteRepository, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewFavoriteRepository(db), db
}

func seedStudios(t *testing.T, db *gorm.DB, names ...string) []domain.Studio {
	t.Helper()

	studios := make([]domain.Studio, len(names))
	for i, name := range names {
		studios[i] = domain.Studio{Name: name, City: "Paris", PricePerHour: 10, CreatedBy: 1}
		require.NoError(t, db.Create(&studios[i]).Error)
	}
	return studios
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	repo, db := setupFavorites(t)
	ctx := context.Background()
	studios := seedStudios(t, db, "A")

	require.NoError(t, repo.Add(ctx, 1, studios[0].ID))
	require.NoError(t, repo.Add(ctx, 1, studios[0].ID))

	var cnt int64
	db.Model(&domain.Favorite{}).Where("user_id = ? AND studio_id = ?", 1, studios[0].ID).Count(&cnt)
	assert.Equal(t, int64(1), cnt)
}

func TestFavoriteRemoveAbsentIsNoError(t *testing.T) {
	repo, db := setupFavorites(t)
	ctx := context.Background()
	studios := seedStudios(t, db, "A")

	assert.NoError(t, repo.Remove(ctx, 1, studios[0].ID))
}

func TestFavoriteExists(t *testing.T) {
	repo, db := setupFavorites(t)
	ctx := context.Background()
	studios := seedStudios(t, db, "A", "B")

	require.NoError(t, repo.Add(ctx, 1, studios[0].ID))

	ok, err := repo.Exists(ctx, 1, studios[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 1, studios[1].ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteListStudiosByUser(t *testing.T) {
	repo, db := setupFavorites(t)
	ctx := context.Background()
	studios := seedStudios(t, db, "A", "B", "C")

	require.NoError(t, repo.Add(ctx, 1, studios[0].ID))
	require.NoError(t, repo.Add(ctx, 1, studios[2].ID))
	require.NoError(t, repo.Add(ctx, 2, studios[1].ID))

	rows, err := repo.ListStudiosByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	names := []string{rows[0].Name, rows[1].Name}
	assert.ElementsMatch(t, []string{"A", "C"}, names)

	require.NoError(t, repo.Remove(ctx, 1, studios[0].ID))

	rows, err = repo.ListStudiosByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "C", rows[0].Name)
}
