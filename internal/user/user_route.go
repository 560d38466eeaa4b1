package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	users := r.Group("/user")
	users.Use(authMW)
	{
		users.GET("/profile", handler.Profile)
	}
}
