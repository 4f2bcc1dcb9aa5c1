package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/motorcare/vehicle-service-api/internal/audit"
	"github.com/motorcare/vehicle-service-api/internal/auth"
	"github.com/motorcare/vehicle-service-api/internal/cache"
	"github.com/motorcare/vehicle-service-api/internal/config"
	"github.com/motorcare/vehicle-service-api/internal/handlers"
	infraRepo "github.com/motorcare/vehicle-service-api/internal/infra/repository"
	"github.com/motorcare/vehicle-service-api/internal/middleware"
	ucBooking "github.com/motorcare/vehicle-service-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	catalog *cache.Catalog,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	assignMechanicUC := ucBooking.NewAssignMechanic(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, catalog, log)
	userHandler := handlers.NewUserHandler(db, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		getBookingUC,
		updateStatusUC,
		assignMechanicUC,
		log,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(auth.RoleAdmin))
			{
				admin.PATCH("/bookings/:id/assign-mechanic", bookingHandler.AssignMechanic)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/users/mechanics", userHandler.ListMechanics)
				admin.POST("/users/mechanics", userHandler.CreateMechanic)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
