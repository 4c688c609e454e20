package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.GET("/system/health", h.healthCheck)
	api.GET("/safe-zones", h.listSafeZones)

	// Маршруты, требующие API-ключ
	protected := api.Group("", APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger))
	{
		protected.POST("/predict", h.predict)
		protected.POST("/alert", h.raiseAlert)
	}
}
