package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TailorConnectApp/tailor-marketplace/internal/httperr"
	"github.com/TailorConnectApp/tailor-marketplace/internal/httpresp"
	"github.com/TailorConnectApp/tailor-marketplace/internal/middleware"
	ucReview "github.com/TailorConnectApp/tailor-marketplace/internal/usecase/review"
)

type ReviewHandler struct {
	createReview *ucReview.CreateReview
}

func NewReviewHandler(createReview *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{createReview: createReview}
}

type CreateReviewRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	TailorID string `json:"tailor_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rating must be between 1 and 5.")
		return
	}

	review, err := h.createReview.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		CustomerID: customerID,
		OrderID:    req.OrderID,
		TailorID:   req.TailorID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "order_not_found":
			httperr.NotFound(c, code, "Order not found.")
		case "not_order_owner":
			httperr.Forbidden(c, code, "You can only review your own orders.")
		case "tailor_mismatch":
			httperr.BadRequest(c, code, "The review does not match the order's tailor.")
		case "order_not_delivered":
			httperr.Conflict(c, code, "Only delivered orders can be reviewed.")
		case "review_already_exists":
			httperr.Conflict(c, code, "This order already has a review.")
		case "invalid_rating":
			httperr.BadRequest(c, code, "Rating must be between 1 and 5.")
		case "":
			httperr.Internal(c, "failed_to_create_review", "Could not submit review.")
		default:
			httperr.BadRequest(c, code, "Request rejected.")
		}
		return
	}

	httpresp.Created(c, review)
}
