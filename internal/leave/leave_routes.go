package leave

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(rate.Limit(5), 10))
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", middleware.Idempotency(rdb), handler.Create)
		leaves.PATCH("/:id", handler.Resolve)
	}

	approvals := r.Group("/leave-approvals")
	approvals.Use(middleware.AuthMiddleware(), middleware.RateLimitByUser(rate.Limit(5), 10))
	{
		approvals.GET("", handler.ListApprovals)
		approvals.POST("", handler.CreateApproval)
	}
}
