package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nowbuy/internal/domain"
	proxysvc "nowbuy/internal/service/proxy"
)

func listProxiesHandler(svc *proxysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		proxies, err := svc.List(c.Request.Context())
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "proxies_unavailable", "failed to list proxy buyers")
			return
		}
		if proxies == nil {
			proxies = []domain.ProxyBuyer{}
		}
		c.JSON(http.StatusOK, gin.H{"results": proxies, "total": len(proxies)})
	}
}
