package handlers

import (
	"github.com/gin-gonic/gin"

	domainBooking "github.com/TailorConnectApp/tailor-marketplace/internal/domain/booking"
	"github.com/TailorConnectApp/tailor-marketplace/internal/dto"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httpresp"
	"github.com/TailorConnectApp/tailor-marketplace/internal/middleware"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
	ucBooking "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/booking"
	ucCatalog "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/catalog"
	ucOrder "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	submit       *ucBooking.Submit
	views        *ucOrder.Views
	updateStatus *ucOrder.UpdateStatus
	markPaid     *ucOrder.MarkPaid
	tailors      *ucCatalog.Tailors
}

func NewOrderHandler(
	submit *ucBooking.Submit,
	views *ucOrder.Views,
	updateStatus *ucOrder.UpdateStatus,
	markPaid *ucOrder.MarkPaid,
	tailors *ucCatalog.Tailors,
) *OrderHandler {
	return &OrderHandler{
		submit:       submit,
		views:        views,
		updateStatus: updateStatus,
		markPaid:     markPaid,
		tailors:      tailors,
	}
}

// actor builds the acting identity, resolving the tailor profile when
// the caller is a tailor account. A failed profile lookup aborts the
// request; it must not degrade into an unowned actor.
func (h *OrderHandler) actor(c *gin.Context) (ucOrder.Actor, bool) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	actor := ucOrder.Actor{UserID: userID, Role: role}
	if role == models.RoleTailor {
		t, err := h.tailors.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			httperr.Internal(c, "profile_lookup_failed", "Could not resolve your tailor profile.")
			return ucOrder.Actor{}, false
		}
		if t != nil {
			actor.TailorID = t.ID
		}
	}
	return actor, true
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	TailorID    string `json:"tailor_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	GarmentType string `json:"garment_type" binding:"required"`

	PickupAddress string `json:"pickup_address" binding:"required"`
	PickupDate    string `json:"pickup_date" binding:"required"` // YYYY-MM-DD
	PickupTime    string `json:"pickup_time"`                    // HH:MM

	SpecialInstructions string   `json:"special_instructions"`
	Measurements        string   `json:"measurements"` // existing | new | home-visit
	PaymentMethod       string   `json:"payment_method" binding:"required"`
	ReferenceImages     []string `json:"reference_images"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (BOOKING SUBMISSION)
// ======================================================

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	order, err := h.submit.Execute(c.Request.Context(), customerID, domainBooking.Form{
		TailorID:            req.TailorID,
		ServiceType:         req.ServiceType,
		GarmentType:         req.GarmentType,
		PickupAddress:       req.PickupAddress,
		PickupDate:          req.PickupDate,
		PickupTime:          req.PickupTime,
		SpecialInstructions: req.SpecialInstructions,
		Measurements:        req.Measurements,
		PaymentMethod:       req.PaymentMethod,
		ReferenceImages:     req.ReferenceImages,
	})
	if err != nil {
		mapOrderError(c, err)
		return
	}

	httpresp.Created(c, order)
}

// ======================================================
// VIEWS
// ======================================================

// GET /api/orders/customer
func (h *OrderHandler) ListForCustomer(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	orders, err := h.views.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		return
	}

	httpresp.List(c, orders)
}

// GET /api/orders/tailor/:tailorId
func (h *OrderHandler) ListForTailor(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	tailorID := c.Param("tailorId")

	if actor.TailorID == "" || actor.TailorID != tailorID {
		httperr.Forbidden(c, "not_order_owner", "You can only list your own orders.")
		return
	}

	orders, err := h.views.ListByTailor(c.Request.Context(), tailorID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		return
	}

	httpresp.List(c, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.views.Get(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		mapOrderError(c, err)
		return
	}

	httpresp.OK(c, order)
}

// GET /api/orders/:id/tracking
func (h *OrderHandler) Tracking(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.views.Get(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		mapOrderError(c, err)
		return
	}

	httpresp.OK(c, dto.OrderTrackingFromModel(order))
}

// ======================================================
// STATE CHANGES
// ======================================================

// PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Target status is required.")
		return
	}

	order, err := h.updateStatus.Execute(c.Request.Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		mapOrderError(c, err)
		return
	}

	httpresp.OK(c, order)
}

// PATCH /api/orders/:id/paid
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	order, err := h.markPaid.Execute(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		mapOrderError(c, err)
		return
	}

	httpresp.OK(c, order)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapOrderError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "authentication_required":
		httperr.Unauthorized(c, code, "Please login to continue.")
	case "order_not_found":
		httperr.NotFound(c, code, "Order not found.")
	case "tailor_not_found":
		httperr.NotFound(c, code, "Tailor not found.")
	case "service_not_found", "service_not_available":
		httperr.BadRequest(c, code, "The selected service is not offered by this tailor.")
	case "not_order_owner":
		httperr.Forbidden(c, code, "You are not allowed to act on this order.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown order status.")
	case "invalid_transition":
		httperr.Conflict(c, code, "This status change is not allowed from the order's current state.")
	case "order_terminal":
		httperr.Conflict(c, code, "Delivered and cancelled orders cannot change status.")
	case "status_conflict":
		httperr.Conflict(c, code, "The order changed concurrently, reload and retry.")
	case "missing_tailor", "missing_pickup_address", "missing_pickup_date",
		"invalid_pickup_date", "invalid_service_type", "invalid_garment_type",
		"invalid_payment_method", "invalid_measurements":
		httperr.BadRequest(c, code, "Please correct the highlighted booking fields.")
	case "":
		httperr.Internal(c, "internal_error", "Something went wrong.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
