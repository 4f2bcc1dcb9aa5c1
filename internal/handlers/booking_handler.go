package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/dto"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/middleware"
	"github.com/motorcare/vehicle-service-api/internal/models"
	ucbooking "github.com/motorcare/vehicle-service-api/internal/usecase/booking"
)

// ======================================================
// USE CASE CONTRACTS
// ======================================================

type bookingCreator interface {
	Execute(ctx context.Context, ident auth.Identity, in ucbooking.CreateBookingInput) (*models.Booking, error)
}

type bookingLister interface {
	Execute(ctx context.Context, ident auth.Identity, statusFilter string) ([]dto.Booking, error)
}

type bookingGetter interface {
	Execute(ctx context.Context, ident auth.Identity, bookingID uint) (*models.Booking, error)
}

type statusUpdater interface {
	Execute(ctx context.Context, ident auth.Identity, bookingID uint, target string) (*models.Booking, error)
}

type mechanicAssigner interface {
	Execute(ctx context.Context, ident auth.Identity, bookingID, mechanicID uint) (*models.Booking, error)
}

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create bookingCreator
	list   bookingLister
	get    bookingGetter
	update statusUpdater
	assign mechanicAssigner
	log    zerolog.Logger
}

func NewBookingHandler(
	create bookingCreator,
	list bookingLister,
	get bookingGetter,
	update statusUpdater,
	assign mechanicAssigner,
	log zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		list:   list,
		get:    get,
		update: update,
		assign: assign,
		log:    log.With().Str("component", "bookings").Logger(),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AssignMechanicRequest struct {
	MechanicID uint `json:"mechanic_id" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication required")
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), ident, c.Query("status"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) Create(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication required")
		return
	}

	var in ucbooking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ident, in)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "booking created",
		"booking": dto.NewBooking(b),
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication required")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), ident, id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": dto.NewBooking(b)})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication required")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), ident, id, req.Status)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "status updated",
		"booking": dto.NewBooking(b),
	})
}

func (h *BookingHandler) AssignMechanic(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication required")
		return
	}

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req AssignMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.assign.Execute(c.Request.Context(), ident, id, req.MechanicID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "mechanic assigned",
		"booking": dto.NewBooking(b),
	})
}

// bookingID parses the :id route param, writing a field-level
// validation failure for a malformed id.
func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"errors": []httperr.FieldError{
				httperr.Field("id", "must be a numeric booking id"),
			},
		})
		return 0, false
	}
	return uint(id), true
}
