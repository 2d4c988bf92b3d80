package inspection

import (
	"context"
	"testing"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInspectionRepository struct {
	mock.Mock
}

func (m *MockInspectionRepository) List(ctx context.Context) ([]domain.Inspection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Inspection, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) GetByID(ctx context.Context, id int64) (*domain.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}

func (m *MockInspectionRepository) Create(ctx context.Context, inspection *domain.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepository) Update(ctx context.Context, inspection *domain.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, adminNotes string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validInspectionInput() InspectionInput {
	return InspectionInput{
		BookingID:       12,
		InspectorName:   "Sam Okafor",
		ConditionBefore: "Clean, no damage",
		ConditionAfter:  "Minor scuffs on floor",
	}
}

// The parent booking is forced to Completed whatever its status was before
// the inspection. The assertion is literal per status because the behavior
// is unconditional.
func TestInspectionService_Create_CompletesBookingFromAnyStatus(t *testing.T) {
	priorStatuses := []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusApproved,
		domain.BookingStatusRejected,
	}

	for _, prior := range priorStatuses {
		t.Run(string(prior), func(t *testing.T) {
			inspections := &MockInspectionRepository{}
			bookings := &MockBookingRepository{}
			svc := NewInspectionService(inspections, bookings, nil, "")

			inspections.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Inspection).ID = 30
			}).Return(nil)

			bookings.On("GetByID", mock.Anything, int64(12)).
				Return(&domain.Booking{ID: 12, Status: prior, AdminNotes: "kept"}, nil)
			bookings.On("UpdateStatus", mock.Anything, int64(12), domain.BookingStatusCompleted, "kept").
				Return(&domain.Booking{ID: 12, Status: domain.BookingStatusCompleted, AdminNotes: "kept"}, nil)

			inspections.On("GetByID", mock.Anything, int64(30)).Return(&domain.Inspection{
				ID:        30,
				BookingID: 12,
				Booking:   &domain.Booking{ID: 12, Status: domain.BookingStatusCompleted},
			}, nil)

			created, err := svc.Create(context.Background(), validInspectionInput())

			assert.NoError(t, err)
			assert.Equal(t, domain.BookingStatusCompleted, created.Booking.Status)
			bookings.AssertExpectations(t)
		})
	}
}

func TestInspectionService_Create_MissingBookingStillStoresInspection(t *testing.T) {
	inspections := &MockInspectionRepository{}
	bookings := &MockBookingRepository{}
	svc := NewInspectionService(inspections, bookings, nil, "")

	inspections.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Inspection).ID = 31
	}).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(12)).Return(nil, domain.ErrNotFound)
	inspections.On("GetByID", mock.Anything, int64(31)).Return(&domain.Inspection{ID: 31, BookingID: 12}, nil)

	created, err := svc.Create(context.Background(), validInspectionInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(31), created.ID)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInspectionService_Create_BookingUpdateFailureStillReturnsInspection(t *testing.T) {
	inspections := &MockInspectionRepository{}
	bookings := &MockBookingRepository{}
	svc := NewInspectionService(inspections, bookings, nil, "")

	inspections.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Inspection).ID = 32
	}).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(12)).
		Return(&domain.Booking{ID: 12, Status: domain.BookingStatusApproved}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(12), domain.BookingStatusCompleted, "").
		Return(nil, assert.AnError)
	inspections.On("GetByID", mock.Anything, int64(32)).Return(&domain.Inspection{ID: 32, BookingID: 12}, nil)

	// The two writes are not atomic; a failed booking update leaves the
	// inspection in place and the request succeeds.
	created, err := svc.Create(context.Background(), validInspectionInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(32), created.ID)
}

func TestInspectionService_Create_Validation(t *testing.T) {
	svc := NewInspectionService(&MockInspectionRepository{}, &MockBookingRepository{}, nil, "")

	input := validInspectionInput()
	input.BookingID = 0
	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)

	input = validInspectionInput()
	input.InspectorName = ""
	_, err = svc.Create(context.Background(), input)
	assert.Error(t, err)
}

func TestInspectionService_Update_DoesNotTouchBooking(t *testing.T) {
	inspections := &MockInspectionRepository{}
	bookings := &MockBookingRepository{}
	svc := NewInspectionService(inspections, bookings, nil, "")

	inspections.On("Update", mock.Anything, mock.MatchedBy(func(in *domain.Inspection) bool {
		return in.ID == 30 && in.DamagesFound && in.DamageDescription == "Broken window"
	})).Return(nil)
	inspections.On("GetByID", mock.Anything, int64(30)).Return(&domain.Inspection{ID: 30}, nil)

	input := validInspectionInput()
	input.DamagesFound = true
	input.DamageDescription = "Broken window"

	_, err := svc.Update(context.Background(), 30, input)

	assert.NoError(t, err)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInspectionService_Update_NotFound(t *testing.T) {
	inspections := &MockInspectionRepository{}
	svc := NewInspectionService(inspections, &MockBookingRepository{}, nil, "")

	inspections.On("Update", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

	_, err := svc.Update(context.Background(), 404, validInspectionInput())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
