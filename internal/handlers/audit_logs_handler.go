package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/httpresp"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

const maxAuditPageSize = 200

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= maxAuditPageSize {
			limit = n
		}
	}

	q := h.db.Order("created_at DESC").Limit(limit)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal server error")
		return
	}

	httpresp.List(c, logs)
}
