package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainCatalog "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httpresp"
	"github.com/TailorConnectApp/tailor-marketplace/internal/middleware"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	ucCatalog "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type TailorHandler struct {
	search   *ucCatalog.SearchTailors
	tailors  *ucCatalog.Tailors
	services *ucCatalog.Services
}

func NewTailorHandler(
	search *ucCatalog.SearchTailors,
	tailors *ucCatalog.Tailors,
	services *ucCatalog.Services,
) *TailorHandler {
	return &TailorHandler{
		search:   search,
		tailors:  tailors,
		services: services,
	}
}

// ======================================================
// PUBLIC CATALOG
// ======================================================

// GET /api/tailors?location=&service_type=&rating=
func (h *TailorHandler) Search(c *gin.Context) {
	params := domainCatalog.SearchParams{
		Location:    c.Query("location"),
		ServiceType: c.Query("service_type"),
	}

	if raw := c.Query("rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			httperr.BadRequest(c, "invalid_rating_filter", "Rating filter must be a number between 0 and 5.")
			return
		}
		params.MinRating = minRating
	}

	tailors, err := h.search.Execute(c.Request.Context(), params)
	if err != nil {
		httperr.Internal(c, "search_failed", "Could not search tailors.")
		return
	}

	httpresp.List(c, tailors)
}

// GET /api/tailors/:id
func (h *TailorHandler) Get(c *gin.Context) {
	tailor, err := h.tailors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "tailor_not_found") {
			httperr.NotFound(c, "tailor_not_found", "Tailor not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_tailor", "Could not load tailor.")
		return
	}

	httpresp.OK(c, tailor)
}

// GET /api/tailors/:id/services
func (h *TailorHandler) ListServices(c *gin.Context) {
	services, err := h.services.ListActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

// GET /api/tailors/:id/reviews
func (h *TailorHandler) ListReviews(c *gin.Context) {
	reviews, err := h.services.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

// ======================================================
// PROFILE CREATION (AUTH)
// ======================================================

type CreateTailorRequest struct {
	BusinessName    string   `json:"business_name"`
	Location        string   `json:"location" binding:"required"`
	Address         string   `json:"address"`
	Specializations []string `json:"specializations"`
	StartingPrice   float64  `json:"starting_price"`
	AvgDeliveryDays int      `json:"avg_delivery_days"`
	Description     string   `json:"description"`
}

// POST /api/tailors
func (h *TailorHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleTailor {
		httperr.Forbidden(c, "not_a_tailor", "Only tailor accounts can create a profile.")
		return
	}

	var req CreateTailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid tailor profile data.")
		return
	}

	tailor, err := h.tailors.CreateProfile(c.Request.Context(), ucCatalog.CreateProfileInput{
		UserID:          userID,
		BusinessName:    req.BusinessName,
		Specializations: req.Specializations,
		Location:        req.Location,
		Address:         req.Address,
		AvgDeliveryDays: req.AvgDeliveryDays,
		StartingPrice:   req.StartingPrice,
		Description:     req.Description,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_location"):
			httperr.BadRequest(c, "missing_location", "Location is required.")
		case httperr.IsBusiness(err, "tailor_profile_exists"):
			httperr.Conflict(c, "tailor_profile_exists", "This account already has a tailor profile.")
		default:
			httperr.Internal(c, "failed_to_create_tailor", "Could not create tailor profile.")
		}
		return
	}

	httpresp.Created(c, tailor)
}
