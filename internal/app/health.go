package app

import (
	"database/sql"
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// HealthHandler melaporkan kondisi backing service. Kegagalan ping
// dipetakan ke SERVICE_UNAVAILABLE, bukan error mentah dari driver.
func HealthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := db.PingContext(ctx); err != nil {
			writeUnavailable(c, "database")
			return
		}

		if err := rdb.Ping(ctx).Err(); err != nil {
			writeUnavailable(c, "redis")
			return
		}

		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	}
}

func writeUnavailable(c *gin.Context, dependency string) {
	httpErr := apperror.ToHTTP(apperror.ErrUnavailable)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, gin.H{
		"dependency": dependency,
	})
}
