package booking

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
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
		repository.NewBookingRepository(db),
		repository.NewStudioRepository(db),
		zerolog.Nop(),
	)
	return svc, db
}

func seedStudio(t *testing.T, db *gorm.DB, status domain.StudioStatus, reservedUntil string) *domain.Studio {
	t.Helper()

	s := &domain.Studio{
		Name:         "Test Studio",
		City:         "Paris",
		PricePerHour: 40,
		Status:       status,
		CreatedBy:    1,
	}
	if reservedUntil != "" {
		s.ReservedUntil = &reservedUntil
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	b, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01", EndDate: "2024-06-03",
	})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, "2024-06-03", b.EndDate)
}

func TestCreateBookingEndDefaultsToStart(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	b, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", b.EndDate)
}

func TestCreateBookingSharedBoundaryConflicts(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01", EndDate: "2024-06-03",
	})
	require.NoError(t, err)

	// ranges share 06-03: inclusive bounds make this a conflict
	_, err = svc.Create(context.Background(), 11, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-03", EndDate: "2024-06-05",
	})
	assert.ErrorIs(t, err, ErrRangeConflict)
}

func TestCreateBookingContainedRangeConflicts(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01", EndDate: "2024-06-10",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 11, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-04", EndDate: "2024-06-05",
	})
	assert.ErrorIs(t, err, ErrRangeConflict)
}

func TestCreateBookingDisjointRangeAllowed(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01", EndDate: "2024-06-03",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 11, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-04", EndDate: "2024-06-06",
	})
	assert.NoError(t, err)
}

func TestCreateBookingCancelledExcludedFromOverlap(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	cancelled := domain.Booking{
		UserID: 10, ItemID: s.ID,
		Date: "2024-06-01", EndDate: "2024-06-05",
		Status: domain.BookingCancelled,
	}
	require.NoError(t, db.Create(&cancelled).Error)

	_, err := svc.Create(context.Background(), 11, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-02", EndDate: "2024-06-03",
	})
	assert.NoError(t, err)
}

func TestCreateBookingOwnerBlocked(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioReserved, "2024-07-01")

	// start on or before reserved_until is blocked
	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-15",
	})
	assert.ErrorIs(t, err, ErrOwnerBlocked)

	_, err = svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-07-01",
	})
	assert.ErrorIs(t, err, ErrOwnerBlocked)

	// strictly after the boundary is allowed
	_, err = svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-07-02",
	})
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// end before start
	_, err = svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-05", EndDate: "2024-06-01",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingStudioNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: 999, Date: "2024-06-01",
	})
	assert.ErrorIs(t, err, ErrStudioNotFound)
}

func TestDeriveDisplayStatus(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01", EndDate: "2024-06-03",
	})
	require.NoError(t, err)

	status, err := svc.DeriveDisplayStatus(context.Background(), s, "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, domain.StudioReserved, status)

	status, err = svc.DeriveDisplayStatus(context.Background(), s, "2024-06-04")
	require.NoError(t, err)
	assert.Equal(t, domain.StudioAvailable, status)

	// derived status must not touch the stored row
	var stored domain.Studio
	require.NoError(t, db.First(&stored, s.ID).Error)
	assert.Equal(t, domain.StudioAvailable, stored.Status)
}

func TestDeriveDisplayStatusOwnerReservedWins(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioReserved, "2030-01-01")

	status, err := svc.DeriveDisplayStatus(context.Background(), s, "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, domain.StudioReserved, status)
}

func TestExpireOwnerReservations(t *testing.T) {
	svc, db := setupService(t)
	expired := seedStudio(t, db, domain.StudioReserved, "2024-06-01")
	current := seedStudio(t, db, domain.StudioReserved, "2024-06-20")

	svc.ExpireOwnerReservations(context.Background(), "2024-06-10")

	var s1, s2 domain.Studio
	require.NoError(t, db.First(&s1, expired.ID).Error)
	require.NoError(t, db.First(&s2, current.ID).Error)

	assert.Equal(t, domain.StudioAvailable, s1.Status)
	assert.Nil(t, s1.ReservedUntil)
	assert.Equal(t, domain.StudioReserved, s2.Status)
	assert.NotNil(t, s2.ReservedUntil)
}

func TestMyBookingsJoinsStudio(t *testing.T) {
	svc, db := setupService(t)
	s := seedStudio(t, db, domain.StudioAvailable, "")

	_, err := svc.Create(context.Background(), 10, CreateBookingRequest{
		ItemID: s.ID, Date: "2024-06-01", EndDate: "2024-06-03",
	})
	require.NoError(t, err)

	rows, err := svc.MyBookings(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Test Studio", rows[0].StudioName)
	assert.Equal(t, "Paris", rows[0].City)

	rows, err = svc.MyBookings(context.Background(), 11)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
