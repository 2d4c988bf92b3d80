package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListByStatus(ctx context.Context, status string) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) UpdateStatus(ctx context.Context, id int64, status, adminNotes string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, adminNotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newBookingRouter(service booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service).Register(router.Group("/api/bookings"), SessionGuard(nil, false))
	return router
}

func TestBookingHandler_Create(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	stored := &domain.Booking{
		ID:          7,
		FacilityID:  1,
		Status:      domain.BookingStatusPending,
		BookingDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		RequestDate: time.Now(),
		Facility:    &domain.Facility{ID: 1, Name: "Town Hall"},
	}
	service.On("Create", mock.Anything, mock.MatchedBy(func(in booking.CreateBookingInput) bool {
		// the payload's status travels to the service, which discards it
		return in.Status == "Approved" && in.FacilityID == 1
	})).Return(stored, nil)

	payload := map[string]any{
		"facilityId":        1,
		"requesterName":     "Jordan Reyes",
		"requesterEmail":    "jordan@example.com",
		"bookingDate":       "2026-10-01",
		"startTime":         "09:00:00",
		"endTime":           "12:00:00",
		"expectedAttendees": 40,
		"status":            "Approved",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/bookings/7", w.Header().Get("Location"))

	var resp bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "Town Hall", resp.Facility.Name)
}

func TestBookingHandler_Create_ServiceError(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_Get_NotFound(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Get_InvalidID(t *testing.T) {
	router := newBookingRouter(&MockBookingUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_List(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("List", mock.Anything).Return([]domain.Booking{
		{ID: 2, Status: domain.BookingStatusPending, Facility: &domain.Facility{ID: 1, Name: "Town Hall"}},
		{ID: 1, Status: domain.BookingStatusApproved, Facility: &domain.Facility{ID: 1, Name: "Town Hall"}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
}

func TestBookingHandler_ListByStatus(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("ListByStatus", mock.Anything, "Pending").Return([]domain.Booking{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/status/Pending", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	service.AssertExpectations(t)
}

func TestBookingHandler_UpdateStatus_QueryParams(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("UpdateStatus", mock.Anything, int64(5), "Approved", "room checked").
		Return(&domain.Booking{ID: 5, Status: domain.BookingStatusApproved, AdminNotes: "room checked"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/5/status?status=Approved&adminNotes=room+checked", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Approved", resp.Status)
	service.AssertExpectations(t)
}

func TestBookingHandler_UpdateStatus_MissingStatus(t *testing.T) {
	router := newBookingRouter(&MockBookingUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/5/status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_Delete(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("Delete", mock.Anything, int64(5)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBookingHandler_Delete_NotFound(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("Delete", mock.Anything, int64(99)).Return(domain.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
