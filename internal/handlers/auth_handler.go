package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/config"
	"github.com/motorcare/vehicle-service-api/internal/httperr"
	"github.com/motorcare/vehicle-service-api/internal/models"
)

const uniqueViolation = "23505"

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	log    zerolog.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal server error")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         auth.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			httperr.BadRequest(c, "email already registered")
			return
		}
		h.log.Error().Err(err).Msg("failed to create user")
		httperr.Internal(c, "internal server error")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to sign token")
		httperr.Internal(c, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user":    userPayload(&user),
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid credentials")
			return
		}
		h.log.Error().Err(err).Msg("failed to load user")
		httperr.Internal(c, "internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to sign token")
		httperr.Internal(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logged in",
		"user":    userPayload(&user),
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	}
}
