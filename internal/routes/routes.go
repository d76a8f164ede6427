package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TailorConnectApp/tailor-marketplace/internal/audit"
	"github.com/TailorConnectApp/tailor-marketplace/internal/cache"
	"github.com/TailorConnectApp/tailor-marketplace/internal/config"
	"github.com/TailorConnectApp/tailor-marketplace/internal/handlers"
	infraRepo "github.com/TailorConnectApp/tailor-marketplace/internal/infra/repository"
	"github.com/TailorConnectApp/tailor-marketplace/internal/middleware"
	"github.com/TailorConnectApp/tailor-marketplace/internal/timezone"
	ucBooking "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/booking"
	ucCatalog "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/catalog"
	ucOrder "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/order"
	ucReview "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	searchCache := cache.NewSearchCache(cache.NewClient(cfg), cfg.SearchCacheTTL)

	bookingLoc := timezone.Location(cfg.BookingTimezone)

	// ======================================================
	// USE CASES
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(orderRepo, auditDispatcher)
	updateStatusUC := ucOrder.NewUpdateStatus(orderRepo, auditDispatcher)
	markPaidUC := ucOrder.NewMarkPaid(orderRepo, auditDispatcher)
	orderViewsUC := ucOrder.NewViews(orderRepo)

	submitBookingUC := ucBooking.NewSubmit(catalogRepo, createOrderUC, bookingLoc)

	searchTailorsUC := ucCatalog.NewSearchTailors(catalogRepo, searchCache)
	tailorsUC := ucCatalog.NewTailors(catalogRepo)
	servicesUC := ucCatalog.NewServices(catalogRepo)

	createReviewUC := ucReview.NewCreateReview(reviewRepo, auditDispatcher, searchCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	tailorHandler := handlers.NewTailorHandler(searchTailorsUC, tailorsUC, servicesUC)
	serviceHandler := handlers.NewServiceHandler(tailorsUC, servicesUC)

	orderHandler := handlers.NewOrderHandler(
		submitBookingUC,
		orderViewsUC,
		updateStatusUC,
		markPaidUC,
		tailorsUC,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/tailors", tailorHandler.Search)
		api.GET("/tailors/:id", tailorHandler.Get)
		api.GET("/tailors/:id/services", tailorHandler.ListServices)
		api.GET("/tailors/:id/reviews", tailorHandler.ListReviews)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users/me", meHandler.GetMe)
			secured.GET("/users/me/audit-logs", auditLogsHandler.List)

			secured.POST("/tailors", tailorHandler.Create)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id/deactivate", serviceHandler.Deactivate)

			// ------------------------------
			// ORDERS
			// ------------------------------
			secured.POST("/orders", orderHandler.Create)
			secured.GET("/orders/customer", orderHandler.ListForCustomer)
			secured.GET("/orders/tailor/:tailorId", orderHandler.ListForTailor)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.GET("/orders/:id/tracking", orderHandler.Tracking)
			secured.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
			secured.PATCH("/orders/:id/paid", orderHandler.MarkPaid)

			secured.POST("/reviews", reviewHandler.Create)
		}
	}
}
