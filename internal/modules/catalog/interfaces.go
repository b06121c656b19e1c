package catalog

import (
	"context"

	"studiorent/internal/domain"
)

// StatusDeriver is the slice of the booking engine the catalog needs:
// the pre-listing expiry sweep and per-row display status.
type StatusDeriver interface {
	DeriveDisplayStatus(ctx context.Context, studio *domain.Studio, today string) (domain.StudioStatus, error)
	ExpireOwnerReservations(ctx context.Context, today string)
}
