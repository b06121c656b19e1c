package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiorent/internal/domain"
	"studiorent/internal/repository"
)

type Service struct {
	studios *repository.StudioRepository
	engine  StatusDeriver
}

func NewService(studios *repository.StudioRepository, engine StatusDeriver) *Service {
	return &Service{studios: studios, engine: engine}
}

// List runs the expiry sweep, applies filters and annotates each row
// with its display status.
func (s *Service) List(ctx context.Context, f repository.StudioFilters) ([]domain.Studio, error) {
	today := domain.Today()
	s.engine.ExpireOwnerReservations(ctx, today)

	studios, err := s.studios.List(ctx, f)
	if err != nil {
		return nil, err
	}

	for i := range studios {
		status, err := s.engine.DeriveDisplayStatus(ctx, &studios[i], today)
		if err != nil {
			return nil, err
		}
		studios[i].Status = status
	}

	return studios, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Studio, error) {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status, err := s.engine.DeriveDisplayStatus(ctx, studio, domain.Today())
	if err != nil {
		return nil, err
	}
	studio.Status = status

	return studio, nil
}

func (s *Service) MyItems(ctx context.Context, userID int64) ([]domain.Studio, error) {
	return s.studios.ListByOwner(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateStudioRequest) (*domain.Studio, error) {
	if req.Name == "" || req.Price <= 0 || req.City == "" {
		return nil, ErrValidation
	}

	status := domain.StudioStatus(req.Status)
	if status == "" {
		status = domain.StudioAvailable
	}
	if status != domain.StudioAvailable && status != domain.StudioReserved {
		return nil, ErrValidation
	}

	equipments := req.Equipments
	if len(equipments) == 0 {
		equipments = req.Equipment
	}

	studio := &domain.Studio{
		Name:         req.Name,
		City:         req.City,
		PricePerHour: req.Price,
		Status:       status,
		Services:     req.Services.Join(),
		Equipments:   equipments.Join(),
		Image:        req.Image,
		Description:  req.Description,
		CreatedBy:    userID,
	}

	if req.ReservedUntil != "" {
		if !domain.ValidDay(req.ReservedUntil) {
			return nil, ErrValidation
		}
		v := req.ReservedUntil
		studio.ReservedUntil = &v
	}

	if err := s.studios.Create(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

// Update applies a partial update after the owner-or-admin check.
// Returns false when the request carried no recognized field.
func (s *Service) Update(ctx context.Context, requesterID int64, requesterRole string, id int64, req UpdateStudioRequest) (bool, error) {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	if studio.CreatedBy != requesterID && requesterRole != string(domain.RoleAdmin) {
		return false, ErrForbidden
	}

	fields := map[string]any{}

	if req.Name != nil && *req.Name != "" {
		fields["name"] = *req.Name
	}
	if req.City != nil && *req.City != "" {
		fields["city"] = *req.City
	}
	if req.Price != nil && *req.Price > 0 {
		fields["price_per_hour"] = *req.Price
	}
	if req.Status != nil {
		st := domain.StudioStatus(*req.Status)
		if st != domain.StudioAvailable && st != domain.StudioReserved {
			return false, ErrValidation
		}
		fields["status"] = st
	}
	// Image and description accept explicit empty strings.
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Services != nil {
		fields["services"] = req.Services.Join()
	}
	if req.Equipments != nil {
		fields["equipments"] = req.Equipments.Join()
	} else if req.Equipment != nil {
		fields["equipments"] = req.Equipment.Join()
	}
	if req.ReservedUntil != nil {
		if *req.ReservedUntil == "" {
			fields["reserved_until"] = nil
		} else {
			if !domain.ValidDay(*req.ReservedUntil) {
				return false, ErrValidation
			}
			fields["reserved_until"] = *req.ReservedUntil
		}
	}

	if len(fields) == 0 {
		return false, nil
	}

	if err := s.studios.UpdateFields(ctx, id, fields); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the studio and everything hanging off it.
func (s *Service) Delete(ctx context.Context, requesterID int64, requesterRole string, id int64) error {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if studio.CreatedBy != requesterID && requesterRole != string(domain.RoleAdmin) {
		return ErrForbidden
	}

	return s.studios.DeleteCascade(ctx, id)
}
