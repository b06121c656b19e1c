package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"studiorent/internal/domain"
	"studiorent/internal/repository"
)

type Service struct {
	bookings *repository.BookingRepository
	studios  *repository.StudioRepository
	log      zerolog.Logger
}

func NewService(bookings *repository.BookingRepository, studios *repository.StudioRepository, log zerolog.Logger) *Service {
	return &Service{bookings: bookings, studios: studios, log: log}
}

// Create books a studio for an inclusive day range. End defaults to
// start. The owner-block check, the overlap check and the insert run in
// one transaction so concurrent requests cannot both pass the check.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ItemID == 0 || !domain.ValidDay(req.Date) {
		return nil, ErrValidation
	}

	end := req.EndDate
	if end == "" {
		end = req.Date
	}
	if !domain.ValidDay(end) || end < req.Date {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		UserID:  userID,
		ItemID:  req.ItemID,
		Date:    req.Date,
		EndDate: end,
		Status:  domain.BookingConfirmed,
	}

	err := s.bookings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStudios := repository.NewStudioRepository(tx)
		txBookings := repository.NewBookingRepository(tx)

		studio, err := txStudios.GetByID(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudioNotFound
			}
			return err
		}

		if studio.OwnerBlockedFor(req.Date) {
			return ErrOwnerBlocked
		}

		cnt, err := txBookings.CountOverlapping(ctx, req.ItemID, req.Date, end)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRangeConflict
		}

		return txBookings.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64) ([]repository.UserBookingDetails, error) {
	return s.bookings.ListByUserWithStudio(ctx, userID)
}

// StudioBookingDates lists start dates of non-cancelled bookings for
// the public availability widget.
func (s *Service) StudioBookingDates(ctx context.Context, studioID int64) ([]repository.BookedDate, error) {
	return s.bookings.ListDatesByStudio(ctx, studioID)
}

// DeriveDisplayStatus reports the status a listing should show today.
// A stored owner-level "reserved" wins; otherwise a booking covering
// today makes the studio reserved for display only, without touching
// the stored row.
func (s *Service) DeriveDisplayStatus(ctx context.Context, studio *domain.Studio, today string) (domain.StudioStatus, error) {
	if studio.Status == domain.StudioReserved {
		return domain.StudioReserved, nil
	}

	covered, err := s.bookings.ExistsCovering(ctx, studio.ID, today)
	if err != nil {
		return studio.Status, err
	}
	if covered {
		return domain.StudioReserved, nil
	}
	return studio.Status, nil
}

// ExpireOwnerReservations resets owner reservations that ended before
// today. Best-effort: failures are logged and swallowed so a listing
// request is never blocked by the sweep.
func (s *Service) ExpireOwnerReservations(ctx context.Context, today string) {
	n, err := s.studios.ExpireOwnerReservations(ctx, today)
	if err != nil {
		s.log.Warn().Err(err).Msg("owner reservation sweep failed")
		return
	}
	if n > 0 {
		s.log.Info().Int64("expired", n).Msg("owner reservations expired")
	}
}
