package department

import (
	"go-leave/internal/middleware"
	"go-leave/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetById)
		departments.POST("", middleware.RequirePolicy(policy.CanManageCatalog), handler.Create)
		departments.PUT("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Update)
		departments.DELETE("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Delete)
	}
}
