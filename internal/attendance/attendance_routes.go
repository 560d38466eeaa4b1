package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/Thato402/employee-attendance-tracker/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW, idempotencyMW gin.HandlerFunc) {
	records := r.Group("/attendance")
	records.Use(authMW)
	{
		records.GET("", h.List)
		records.POST("", middleware.RateLimitByUser(2, 5), idempotencyMW, h.Create)
		records.DELETE("/:id", middleware.RateLimitByUser(2, 5), h.Delete)
	}
}
