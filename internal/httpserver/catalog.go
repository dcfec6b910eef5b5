package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nowbuy/internal/domain"
	catalogsvc "nowbuy/internal/service/catalog"
)

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("q"))
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "catalog_unavailable", "failed to read catalog")
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"results": products, "total": len(products)})
	}
}

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
			return
		}
		product, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errorResponse(c, http.StatusNotFound, "product_not_found", "no such product")
				return
			}
			errorResponse(c, http.StatusInternalServerError, "catalog_unavailable", "failed to read catalog")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
