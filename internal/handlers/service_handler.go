package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httpresp"
	"github.com/TailorConnectApp/tailor-marketplace/internal/middleware"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	ucCatalog "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/catalog"
)

type ServiceHandler struct {
	tailors  *ucCatalog.Tailors
	services *ucCatalog.Services
}

func NewServiceHandler(
	tailors *ucCatalog.Tailors,
	services *ucCatalog.Services,
) *ServiceHandler {
	return &ServiceHandler{
		tailors:  tailors,
		services: services,
	}
}

// actingTailor resolves the authenticated user's tailor profile, the
// ownership anchor for every service mutation.
func (h *ServiceHandler) actingTailor(c *gin.Context) (*models.Tailor, bool) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleTailor {
		httperr.Forbidden(c, "not_a_tailor", "Only tailor accounts can manage services.")
		return nil, false
	}

	tailor, err := h.tailors.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "profile_lookup_failed", "Could not resolve your tailor profile.")
		return nil, false
	}
	if tailor == nil {
		httperr.NotFound(c, "tailor_profile_missing", "Create a tailor profile first.")
		return nil, false
	}
	return tailor, true
}

type CreateServiceRequest struct {
	ServiceType  string   `json:"service_type" binding:"required"`
	GarmentTypes []string `json:"garment_types"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	DeliveryDays int      `json:"delivery_days" binding:"required,gt=0"`
	Description  string   `json:"description"`
}

// POST /api/services
func (h *ServiceHandler) Create(c *gin.Context) {
	tailor, ok := h.actingTailor(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	service, err := h.services.Create(c.Request.Context(), ucCatalog.CreateServiceInput{
		TailorID:     tailor.ID,
		ServiceType:  req.ServiceType,
		GarmentTypes: req.GarmentTypes,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
		Description:  req.Description,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "Invalid service data.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, service)
}

// PATCH /api/services/:id/deactivate
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	tailor, ok := h.actingTailor(c)
	if !ok {
		return
	}

	err := h.services.Deactivate(c.Request.Context(), c.Param("id"), tailor.ID)
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_deactivate_service", "Could not deactivate service.")
		return
	}

	httpresp.OK(c, gin.H{"message": "service deactivated"})
}
