package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

// UserHandler serves the admin-facing mechanic directory: listing
// mechanics to drive assignment and onboarding new mechanic accounts.
type UserHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewUserHandler(db *gorm.DB, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		db:  db,
		log: log.With().Str("component", "users").Logger(),
	}
}

type CreateMechanicRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (h *UserHandler) ListMechanics(c *gin.Context) {
	var mechanics []models.User
	if err := h.db.
		Where("role = ?", auth.RoleMechanic).
		Order("name ASC").
		Find(&mechanics).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to list mechanics")
		httperr.Internal(c, "internal server error")
		return
	}

	out := make([]gin.H, 0, len(mechanics))
	for i := range mechanics {
		out = append(out, userPayload(&mechanics[i]))
	}

	c.JSON(http.StatusOK, gin.H{"mechanics": out})
}

func (h *UserHandler) CreateMechanic(c *gin.Context) {
	var req CreateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal server error")
		return
	}

	mechanic := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         auth.RoleMechanic,
	}

	if err := h.db.Create(&mechanic).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			httperr.BadRequest(c, "email already registered")
			return
		}
		h.log.Error().Err(err).Msg("failed to create mechanic")
		httperr.Internal(c, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "mechanic created",
		"mechanic": userPayload(&mechanic),
	})
}
