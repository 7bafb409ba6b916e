package leavetype

import (
	"go-leave/internal/middleware"
	"go-leave/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaveTypes := r.Group("/leave-types")
	leaveTypes.Use(middleware.AuthMiddleware())
	{
		leaveTypes.GET("", handler.GetAll)
		leaveTypes.GET("/:id", handler.GetById)
		leaveTypes.POST("", middleware.RequirePolicy(policy.CanManageCatalog), handler.Create)
		leaveTypes.PUT("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Update)
		leaveTypes.DELETE("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Delete)
	}
}
