package identity

import (
	"go-leave/internal/middleware"
	"go-leave/internal/policy"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(rate.Limit(5), 10))
		{
			protected.GET("/me", handler.Me)
			protected.PUT("/password", handler.ChangePassword)
			protected.PUT("/users/:id/role",
				middleware.RequirePolicy(policy.CanAssignRoles), handler.AssignRole)
		}
	}
}
