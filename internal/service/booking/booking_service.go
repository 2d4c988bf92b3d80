package booking

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

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status, adminNotes string) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService owns the booking lifecycle. A new booking always enters as
// Pending no matter what the requester submitted; the admin status write is
// deliberately unvalidated against the lifecycle table (the historical
// behavior this service preserves), and the only system-driven transition,
// Approved to Completed, is performed by the inspection service.
type BookingService struct {
	bookings repository.BookingRepository
	producer Producer
	topic    string
}

type CreateBookingInput struct {
	FacilityID        int64  `json:"facilityId"`
	RequesterName     string `json:"requesterName"`
	RequesterEmail    string `json:"requesterEmail"`
	RequesterPhone    string `json:"requesterPhone"`
	BookingDate       string `json:"bookingDate"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Purpose           string `json:"purpose"`
	ExpectedAttendees int    `json:"expectedAttendees"`
	// Status is accepted in the payload only to be ignored.
	Status string `json:"status"`
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, topic string) *BookingService {
	return &BookingService{bookings: bookings, producer: producer, topic: topic}
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.FacilityID <= 0 {
		return nil, errors.New("facility id is required")
	}
	if input.RequesterName == "" {
		return nil, errors.New("requester name is required")
	}
	if input.RequesterEmail == "" {
		return nil, errors.New("requester email is required")
	}
	if input.ExpectedAttendees <= 0 {
		return nil, errors.New("expected attendees must be positive")
	}

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		return nil, errors.New("booking date must be YYYY-MM-DD")
	}

	booking := &domain.Booking{
		FacilityID:        input.FacilityID,
		RequesterName:     input.RequesterName,
		RequesterEmail:    input.RequesterEmail,
		RequesterPhone:    input.RequesterPhone,
		BookingDate:       bookingDate,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		Purpose:           input.Purpose,
		ExpectedAttendees: input.ExpectedAttendees,
		Status:            domain.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	created, err := s.bookings.GetByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", created)
	return created, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) ListByStatus(ctx context.Context, status string) ([]domain.Booking, error) {
	return s.bookings.ListByStatus(ctx, domain.BookingStatus(status))
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// UpdateStatus writes the given status and notes unconditionally. Writes that
// fall outside the documented lifecycle are logged, not rejected.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status, adminNotes string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := domain.BookingStatus(status)
	if !domain.CanTransition(current.Status, target) {
		slog.Warn("booking status written outside lifecycle",
			"bookingId", id, "from", current.Status, "to", target)
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, target, adminNotes)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_status_changed", updated)
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	return s.bookings.Delete(ctx, id)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
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

var _ BookingUseCase = (*BookingService)(nil)
