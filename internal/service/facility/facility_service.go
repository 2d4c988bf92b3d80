package facility

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/repository"
)

type FacilityUseCase interface {
	List(ctx context.Context) ([]domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	Create(ctx context.Context, input FacilityInput) (*domain.Facility, error)
	Update(ctx context.Context, id int64, input FacilityInput) (*domain.Facility, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFacilities(ctx context.Context) ([]domain.Facility, error)
	SetFacilities(ctx context.Context, facilities []domain.Facility) error
	InvalidateFacilities(ctx context.Context) error
}

type FacilityService struct {
	repo  repository.FacilityRepository
	cache Cache
}

// FacilityInput carries every admin-editable field. Id and createdDate are
// never taken from the client.
type FacilityInput struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Amenities   string `json:"amenities"`
	Status      string `json:"status"`
}

func NewFacilityService(repo repository.FacilityRepository, cache Cache) *FacilityService {
	return &FacilityService{repo: repo, cache: cache}
}

func (s *FacilityService) List(ctx context.Context) ([]domain.Facility, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFacilities(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	facilities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFacilities(ctx, facilities)
	}
	return facilities, nil
}

func (s *FacilityService) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FacilityService) Create(ctx context.Context, input FacilityInput) (*domain.Facility, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}

	status := domain.FacilityStatus(input.Status)
	if status == "" {
		status = domain.FacilityStatusAvailable
	}

	facility := &domain.Facility{
		Name:        input.Name,
		Type:        domain.FacilityType(input.Type),
		Location:    input.Location,
		Description: input.Description,
		Capacity:    input.Capacity,
		Amenities:   input.Amenities,
		Status:      status,
	}

	if err := s.repo.Create(ctx, facility); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return facility, nil
}

func (s *FacilityService) Update(ctx context.Context, id int64, input FacilityInput) (*domain.Facility, error) {
	facility := &domain.Facility{
		ID:          id,
		Name:        input.Name,
		Type:        domain.FacilityType(input.Type),
		Location:    input.Location,
		Description: input.Description,
		Capacity:    input.Capacity,
		Amenities:   input.Amenities,
		Status:      domain.FacilityStatus(input.Status),
	}

	if err := s.repo.Update(ctx, facility); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

// Delete removes the facility; the store cascades to its bookings and,
// through them, to their inspections.
func (s *FacilityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FacilityService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFacilities(ctx); err != nil {
		slog.Warn("failed to invalidate facilities cache", "error", err)
	}
}

var _ FacilityUseCase = (*FacilityService)(nil)
