package middleware

import (
	"go-leave/internal/policy"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequirePolicy menolak request dengan 403 jika predicate gagal.
// Dipakai untuk gate yang murni role-based (katalog, employee admin).
func RequirePolicy(allowed func(policy.Principal) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFromContext(c)
		if p.UserID == "" {
			response.Error(c,
				apperror.ErrUnauthorized.HTTPStatus,
				apperror.ErrUnauthorized.Code,
				apperror.ErrUnauthorized.Message,
				nil,
			)
			c.Abort()
			return
		}

		if !allowed(p) {
			response.Error(c,
				apperror.ErrForbidden.HTTPStatus,
				apperror.ErrForbidden.Code,
				apperror.ErrForbidden.Message,
				nil,
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
