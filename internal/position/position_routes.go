package position

import (
	"go-leave/internal/middleware"
	"go-leave/internal/policy"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	{
		positions.GET("", handler.GetAll)
		positions.GET("/:id", handler.GetById)
		positions.POST("", middleware.RequirePolicy(policy.CanManageCatalog), handler.Create)
		positions.PUT("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Update)
		positions.DELETE("/:id", middleware.RequirePolicy(policy.CanManageCatalog), handler.Delete)
	}
}
