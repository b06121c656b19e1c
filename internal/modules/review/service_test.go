package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studiorent/internal/database"
	"studiorent/internal/domain"
	"studiorent/internal/repository"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(
		repository.NewReviewRepository(db),
		repository.NewStudioRepository(db),
	)
	return svc, db
}

func TestAddReview(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	u := domain.User{Username: "claire", Email: "claire@example.com", PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	s := domain.Studio{Name: "S", City: "Paris", PricePerHour: 10, CreatedBy: 1}
	require.NoError(t, db.Create(&s).Error)

	rev, err := svc.Add(ctx, u.ID, s.ID, AddReviewRequest{Rating: 5, Comment: "great light"})
	require.NoError(t, err)
	assert.NotZero(t, rev.ID)

	rows, err := svc.ListByStudio(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Rating)
	assert.Equal(t, "great light", rows[0].Comment)
	assert.Equal(t, "claire", rows[0].Username)
}

func TestAddReviewInvalidRating(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	s := domain.Studio{Name: "S", City: "Paris", PricePerHour: 10, CreatedBy: 1}
	require.NoError(t, db.Create(&s).Error)

	_, err := svc.Add(ctx, 1, s.ID, AddReviewRequest{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Add(ctx, 1, s.ID, AddReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestAddReviewStudioNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Add(context.Background(), 1, 404, AddReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrStudioNotFound)
}

func TestListByStudioEmpty(t *testing.T) {
	svc, db := setupService(t)

	s := domain.Studio{Name: "S", City: "Paris", PricePerHour: 10, CreatedBy: 1}
	require.NoError(t, db.Create(&s).Error)

	rows, err := svc.ListByStudio(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
