package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/dto"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/middleware"
	"github.com/motorcare/vehicle-service-api/internal/models"
	ucbooking "github.com/motorcare/vehicle-service-api/internal/usecase/booking"
)

// Mocks for the use case contracts

type MockCreator struct{ mock.Mock }

func (m *MockCreator) Execute(ctx context.Context, ident auth.Identity, in ucbooking.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, ident, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockLister struct{ mock.Mock }

func (m *MockLister) Execute(ctx context.Context, ident auth.Identity, statusFilter string) ([]dto.Booking, error) {
	args := m.Called(ctx, ident, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.Booking), args.Error(1)
}

type MockGetter struct{ mock.Mock }

func (m *MockGetter) Execute(ctx context.Context, ident auth.Identity, bookingID uint) (*models.Booking, error) {
	args := m.Called(ctx, ident, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockUpdater struct{ mock.Mock }

func (m *MockUpdater) Execute(ctx context.Context, ident auth.Identity, bookingID uint, target string) (*models.Booking, error) {
	args := m.Called(ctx, ident, bookingID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockAssigner struct{ mock.Mock }

func (m *MockAssigner) Execute(ctx context.Context, ident auth.Identity, bookingID, mechanicID uint) (*models.Booking, error) {
	args := m.Called(ctx, ident, bookingID, mechanicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type handlerMocks struct {
	create *MockCreator
	list   *MockLister
	get    *MockGetter
	update *MockUpdater
	assign *MockAssigner
}

func newHandler() (*BookingHandler, handlerMocks) {
	m := handlerMocks{
		create: &MockCreator{},
		list:   &MockLister{},
		get:    &MockGetter{},
		update: &MockUpdater{},
		assign: &MockAssigner{},
	}
	h := NewBookingHandler(m.create, m.list, m.get, m.update, m.assign, zerolog.Nop())
	return h, m
}

func testContext(t *testing.T, ident auth.Identity, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")

	middleware.SetIdentity(c, ident)
	return c, w
}

var testCustomer = auth.Identity{UserID: 10, Role: auth.RoleUser}

func TestBookingHandler_Create(t *testing.T) {
	h, m := newHandler()

	in := ucbooking.CreateBookingInput{
		ServiceID: 1,
		Vehicle: models.VehicleDetails{
			Type: "car", Make: "Toyota", Model: "Corolla",
			Year: 2020, LicensePlate: "ABC123",
		},
		AppointmentDate: "2030-01-02",
		AppointmentTime: "10:00",
	}

	created := &models.Booking{
		ID:          7,
		UserID:      10,
		Status:      "pending",
		TotalAmount: 50,
		Service:     models.Service{ID: 1, Name: "Oil Change", Price: 50},
	}

	c, w := testContext(t, testCustomer, http.MethodPost, "/api/bookings", in)
	m.create.On("Execute", mock.Anything, testCustomer, in).Return(created, nil)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string      `json:"message"`
		Booking dto.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking created", resp.Message)
	assert.Equal(t, uint(7), resp.Booking.ID)
	assert.Equal(t, 50.0, resp.Booking.TotalAmount)
	assert.Equal(t, "pending", resp.Booking.Status)
}

func TestBookingHandler_CreateValidationFailure(t *testing.T) {
	h, m := newHandler()

	c, w := testContext(t, testCustomer, http.MethodPost, "/api/bookings", ucbooking.CreateBookingInput{})
	m.create.On("Execute", mock.Anything, testCustomer, mock.Anything).
		Return(nil, httperr.ErrValidation(
			httperr.Field("service_id", "is required"),
			httperr.Field("appointment_date", "must be a valid date in YYYY-MM-DD format"),
		))

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string              `json:"message"`
		Errors  []httperr.FieldError `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Message)
	assert.Len(t, resp.Errors, 2)
}

func TestBookingHandler_List(t *testing.T) {
	h, m := newHandler()

	c, w := testContext(t, testCustomer, http.MethodGet, "/api/bookings?status=pending", nil)
	m.list.On("Execute", mock.Anything, testCustomer, "pending").
		Return([]dto.Booking{{ID: 2, Status: "pending"}, {ID: 1, Status: "pending"}}, nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []dto.Booking `json:"bookings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, uint(2), resp.Bookings[0].ID)
}

func TestBookingHandler_GetForbidden(t *testing.T) {
	h, m := newHandler()

	c, w := testContext(t, testCustomer, http.MethodGet, "/api/bookings/7", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	m.get.On("Execute", mock.Anything, testCustomer, uint(7)).
		Return(nil, httperr.ErrForbidden("not allowed to view this booking"))

	h.Get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookingHandler_GetNotFound(t *testing.T) {
	h, m := newHandler()

	c, w := testContext(t, testCustomer, http.MethodGet, "/api/bookings/404", nil)
	c.Params = gin.Params{{Key: "id", Value: "404"}}
	m.get.On("Execute", mock.Anything, testCustomer, uint(404)).
		Return(nil, httperr.ErrNotFound("booking"))

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "booking not found")
}

func TestBookingHandler_MalformedIDIsValidationFailure(t *testing.T) {
	h, _ := newHandler()

	c, w := testContext(t, testCustomer, http.MethodGet, "/api/bookings/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be a numeric booking id")
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	h, m := newHandler()

	c, w := testContext(t, testCustomer, http.MethodPatch, "/api/bookings/7/status",
		UpdateStatusRequest{Status: "cancelled"})
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	updated := &models.Booking{ID: 7, UserID: 10, Status: "cancelled"}
	m.update.On("Execute", mock.Anything, testCustomer, uint(7), "cancelled").
		Return(updated, nil)

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "status updated")
	assert.Contains(t, w.Body.String(), `"cancelled"`)
}

func TestBookingHandler_AssignMechanic(t *testing.T) {
	h, m := newHandler()

	adminIdent := auth.Identity{UserID: 1, Role: auth.RoleAdmin}
	c, w := testContext(t, adminIdent, http.MethodPatch, "/api/bookings/7/assign-mechanic",
		AssignMechanicRequest{MechanicID: 20})
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	mechID := uint(20)
	updated := &models.Booking{
		ID:         7,
		UserID:     10,
		MechanicID: &mechID,
		Mechanic:   &models.User{ID: 20, Name: "Marco", Role: auth.RoleMechanic},
		Status:     "approved",
	}
	m.assign.On("Execute", mock.Anything, adminIdent, uint(7), uint(20)).
		Return(updated, nil)

	h.AssignMechanic(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string      `json:"message"`
		Booking dto.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mechanic assigned", resp.Message)
	assert.NotNil(t, resp.Booking.Mechanic)
	assert.Equal(t, "Marco", resp.Booking.Mechanic.Name)
}

func TestBookingHandler_MissingIdentityIsUnauthorized(t *testing.T) {
	h, _ := newHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)

	h.List(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
