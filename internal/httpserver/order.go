package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nowbuy/internal/domain"
	ordersvc "nowbuy/internal/service/order"
)

type submitOrderRequest struct {
	ProxyID         int64  `json:"proxyId"`
	SpecialRequests string `json:"specialRequests"`
}

// orderResponse pairs the persisted record with the fixed progress timeline
// rendered by the confirmation view.
type orderResponse struct {
	Order    domain.Order        `json:"order"`
	Timeline []domain.OrderStage `json:"timeline"`
}

func orderDraftHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := svc.Assemble(c.Request.Context(), sessionID(c))
		if err != nil {
			if errors.Is(err, ordersvc.ErrNoOrderableItems) {
				errorResponse(c, http.StatusConflict, "no_orderable_items", "cart has no orderable items, return to the cart")
				return
			}
			errorResponse(c, http.StatusInternalServerError, "order_unavailable", "failed to assemble order")
			return
		}
		c.JSON(http.StatusOK, draft)
	}
}

func submitOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorResponse(c, http.StatusBadRequest, "invalid_body", "malformed submission body")
			return
		}
		record, err := svc.Submit(c.Request.Context(), sessionID(c), ordersvc.SubmitInput{
			ProxyID:         req.ProxyID,
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrProxyRequired):
				errorResponse(c, http.StatusUnprocessableEntity, "proxy_required", "select a proxy buyer before submitting")
			case errors.Is(err, ordersvc.ErrProxyNotFound):
				errorResponse(c, http.StatusUnprocessableEntity, "proxy_not_found", "the selected proxy buyer does not exist")
			case errors.Is(err, ordersvc.ErrNoOrderableItems):
				errorResponse(c, http.StatusConflict, "no_orderable_items", "cart has no orderable items, return to the cart")
			case errors.Is(err, ordersvc.ErrSubmissionInFlight):
				errorResponse(c, http.StatusConflict, "submission_in_flight", "an order submission is already in progress")
			default:
				errorResponse(c, http.StatusInternalServerError, "submission_failed", "failed to submit order")
			}
			return
		}
		c.JSON(http.StatusCreated, orderResponse{Order: *record, Timeline: record.Timeline()})
	}
}

func lastOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := svc.LastOrder(c.Request.Context(), sessionID(c))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errorResponse(c, http.StatusNotFound, "order_not_found", "no order record for this session")
				return
			}
			errorResponse(c, http.StatusInternalServerError, "order_unavailable", "failed to read order record")
			return
		}
		c.JSON(http.StatusOK, orderResponse{Order: *record, Timeline: record.Timeline()})
	}
}
