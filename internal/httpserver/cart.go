package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nowbuy/internal/badge"
	cartsvc "nowbuy/internal/service/cart"
)

type addCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "cart_unavailable", "failed to read cart")
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorResponse(c, http.StatusBadRequest, "invalid_body", "productId is required")
			return
		}
		view, err := svc.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
		if err != nil {
			if errors.Is(err, cartsvc.ErrProductNotFound) {
				errorResponse(c, http.StatusNotFound, "product_not_found", "no such product")
				return
			}
			errorResponse(c, http.StatusInternalServerError, "cart_unavailable", "failed to update cart")
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func cartCountHandler(counter *badge.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": counter.Count(c.Request.Context(), sessionID(c))})
	}
}
