package employee

import (
	"go-leave/internal/middleware"
	"go-leave/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.PUT("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Update)
		employees.DELETE("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Delete)
	}
}
