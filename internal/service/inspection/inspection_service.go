package inspection

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/kafka"
	"github.com/cityworks/facilitybooking/internal/repository"
)

type InspectionUseCase interface {
	Create(ctx context.Context, input InspectionInput) (*domain.Inspection, error)
	List(ctx context.Context) ([]domain.Inspection, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Inspection, error)
	GetByID(ctx context.Context, id int64) (*domain.Inspection, error)
	Update(ctx context.Context, id int64, input InspectionInput) (*domain.Inspection, error)
	Delete(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type InspectionService struct {
	inspections repository.InspectionRepository
	bookings    repository.BookingRepository
	producer    Producer
	topic       string
}

type InspectionInput struct {
	BookingID         int64  `json:"bookingId"`
	InspectorName     string `json:"inspectorName"`
	InspectorContact  string `json:"inspectorContact"`
	ConditionBefore   string `json:"conditionBefore"`
	ConditionAfter    string `json:"conditionAfter"`
	DamagesFound      bool   `json:"damagesFound"`
	DamageDescription string `json:"damageDescription"`
	DamagePhotos      string `json:"damagePhotos"`
	InspectionNotes   string `json:"inspectionNotes"`
}

func NewInspectionService(inspections repository.InspectionRepository, bookings repository.BookingRepository, producer Producer, topic string) *InspectionService {
	return &InspectionService{inspections: inspections, bookings: bookings, producer: producer, topic: topic}
}

// Create stores the inspection, then marks the parent booking Completed in a
// second write. The two writes are not one transaction: if the booking write
// fails the inspection still exists and the booking keeps its old status.
// The booking is forced to Completed whatever its prior status was.
func (s *InspectionService) Create(ctx context.Context, input InspectionInput) (*domain.Inspection, error) {
	if input.BookingID <= 0 {
		return nil, errors.New("booking id is required")
	}
	if input.InspectorName == "" {
		return nil, errors.New("inspector name is required")
	}

	inspection := &domain.Inspection{
		BookingID:         input.BookingID,
		InspectorName:     input.InspectorName,
		InspectorContact:  input.InspectorContact,
		ConditionBefore:   input.ConditionBefore,
		ConditionAfter:    input.ConditionAfter,
		DamagesFound:      input.DamagesFound,
		DamageDescription: input.DamageDescription,
		DamagePhotos:      input.DamagePhotos,
		InspectionNotes:   input.InspectionNotes,
	}

	if err := s.inspections.Create(ctx, inspection); err != nil {
		return nil, err
	}

	s.completeBooking(ctx, input.BookingID)

	return s.inspections.GetByID(ctx, inspection.ID)
}

func (s *InspectionService) completeBooking(ctx context.Context, bookingID int64) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("failed to load booking after inspection", "bookingId", bookingID, "error", err)
		}
		return
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCompleted, booking.AdminNotes)
	if err != nil {
		slog.Warn("inspection stored but booking not marked completed", "bookingId", bookingID, "error", err)
		return
	}

	s.publish(ctx, "booking_completed", updated)
}

func (s *InspectionService) List(ctx context.Context) ([]domain.Inspection, error) {
	return s.inspections.List(ctx)
}

func (s *InspectionService) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Inspection, error) {
	return s.inspections.ListByBooking(ctx, bookingID)
}

func (s *InspectionService) GetByID(ctx context.Context, id int64) (*domain.Inspection, error) {
	return s.inspections.GetByID(ctx, id)
}

// Update rewrites the inspector, condition, damage and note fields. It never
// touches the parent booking.
func (s *InspectionService) Update(ctx context.Context, id int64, input InspectionInput) (*domain.Inspection, error) {
	inspection := &domain.Inspection{
		ID:                id,
		InspectorName:     input.InspectorName,
		InspectorContact:  input.InspectorContact,
		ConditionBefore:   input.ConditionBefore,
		ConditionAfter:    input.ConditionAfter,
		DamagesFound:      input.DamagesFound,
		DamageDescription: input.DamageDescription,
		DamagePhotos:      input.DamagePhotos,
		InspectionNotes:   input.InspectionNotes,
	}

	if err := s.inspections.Update(ctx, inspection); err != nil {
		return nil, err
	}
	return s.inspections.GetByID(ctx, id)
}

func (s *InspectionService) Delete(ctx context.Context, id int64) error {
	return s.inspections.Delete(ctx, id)
}

func (s *InspectionService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		FacilityID:     booking.FacilityID,
		Status:         string(booking.Status),
		RequesterEmail: booking.RequesterEmail,
		OccurredAt:     time.Now(),
	}
	if err := s.producer.Publish(ctx, s.topic, strconv.FormatInt(booking.ID, 10), event); err != nil {
		slog.Warn("failed to publish booking event", "type", eventType, "bookingId", booking.ID, "error", err)
	}
}

var _ InspectionUseCase = (*InspectionService)(nil)
