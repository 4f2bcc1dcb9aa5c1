package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/motorcare/vehicle-service-api/internal/cache"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	log     zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{
		db:      db,
		catalog: catalog,
		log:     log.With().Str("component", "services").Logger(),
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.catalog.Get(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"services": services})
		return
	}

	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to list services")
		httperr.Internal(c, "internal server error")
		return
	}

	h.catalog.Set(ctx, services)

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service not found")
			return
		}
		h.log.Error().Err(err).Msg("failed to load service")
		httperr.Internal(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to create service")
		httperr.Internal(c, "internal server error")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"message": "service created",
		"service": svc,
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var svc models.Service
	if err := h.db.First(&svc, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service not found")
			return
		}
		h.log.Error().Err(err).Msg("failed to load service")
		httperr.Internal(c, "internal server error")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	if req.Price != nil && *req.Price <= 0 {
		httperr.BadRequest(c, "price must be positive")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to update service")
		httperr.Internal(c, "internal server error")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "service updated",
		"service": svc,
	})
}
