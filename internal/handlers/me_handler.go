package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/middleware"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication required")
		return
	}

	var user models.User
	if err := h.db.First(&user, ident.UserID).Error; err != nil {
		httperr.Internal(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}
