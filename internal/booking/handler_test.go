package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GeoTsinganos/booking-system-api/internal/apperr"
	"github.com/GeoTsinganos/booking-system-api/internal/auth"
	"github.com/GeoTsinganos/booking-system-api/internal/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Create(ctx context.Context, actor auth.Identity, req CreateBookingRequest) (*Booking, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) Cancel(ctx context.Context, actor auth.Identity, bookingID int) (*Booking, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) Confirm(ctx context.Context, actor auth.Identity, bookingID int) (*Booking, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) AvailableSlots(ctx context.Context, serviceID int, date string) ([]availability.Availability, error) {
	args := m.Called(ctx, serviceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.Availability), args.Error(1)
}

func (m *MockService) GetUserBookings(ctx context.Context, userID int) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockService) GetBookingsByDate(ctx context.Context, date string) ([]BookingWithDetails, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockService) GetBookingsByService(ctx context.Context, serviceID int) ([]BookingWithDetails, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func authAs(userID int, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func setupRouter(svc Service, userID int, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.Use(authAs(userID, role))
	r.GET("/services/:serviceID/available-slots", h.AvailableSlots)
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", h.ListMyBookings)
	r.POST("/bookings/:bookingID/cancel", h.CancelBooking)
	r.POST("/bookings/:bookingID/confirm", h.ConfirmBooking)
	return r
}

func TestCreateBookingHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 7, auth.RoleUser)

	availabilityID := 5
	svc.On("Create", mock.Anything, auth.Identity{ID: 7}, CreateBookingRequest{ServiceID: 1, AvailabilityID: 5}).
		Return(&Booking{
			ID:             1,
			UserID:         7,
			ServiceID:      1,
			AvailabilityID: &availabilityID,
			Date:           "2025-06-10",
			StartTime:      "10:00",
			EndTime:        "10:30",
			Status:         StatusPending,
		}, nil)

	body, _ := json.Marshal(map[string]int{"service_id": 1, "availability_id": 5})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "2025-06-10", got.Date)
	svc.AssertExpectations(t)
}

func TestCreateBookingHandler_Conflict(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 7, auth.RoleUser)

	svc.On("Create", mock.Anything, auth.Identity{ID: 7}, mock.Anything).
		Return(nil, apperr.Conflict("slot already booked"))

	body, _ := json.Marshal(map[string]int{"service_id": 1, "availability_id": 5})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot already booked")
}

func TestCreateBookingHandler_MissingFields(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 7, auth.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte(`{"notes":"hi"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingHandler_Forbidden(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 8, auth.RoleUser)

	svc.On("Cancel", mock.Anything, auth.Identity{ID: 8}, 1).
		Return(nil, apperr.Permission("you cannot cancel this booking"))

	req := httptest.NewRequest(http.MethodPost, "/bookings/1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConfirmBookingHandler_Admin(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 1, auth.RoleAdmin)

	availabilityID := 5
	svc.On("Confirm", mock.Anything, auth.Identity{ID: 1, IsAdmin: true}, 1).
		Return(&Booking{ID: 1, AvailabilityID: &availabilityID, Status: StatusConfirmed}, nil)

	req := httptest.NewRequest(http.MethodPost, "/bookings/1/confirm", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), StatusConfirmed)
}

func TestAvailableSlotsHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 7, auth.RoleUser)

	svc.On("AvailableSlots", mock.Anything, 1, "2025-06-10").
		Return([]availability.Availability{
			{ID: 1, ServiceID: 1, Date: "2025-06-10", StartTime: "09:00", EndTime: "09:30", IsActive: true},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/services/1/available-slots?date=2025-06-10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "09:00")
}

func TestAvailableSlotsHandler_MissingDate(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 7, auth.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/services/1/available-slots", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "AvailableSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestListMyBookingsHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc, 7, auth.RoleUser)

	svc.On("GetUserBookings", mock.Anything, 7).Return([]Booking{{ID: 1, UserID: 7}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].UserID)
}
