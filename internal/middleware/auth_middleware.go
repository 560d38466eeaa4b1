package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	autherrors "github.com/Thato402/employee-attendance-tracker/internal/auth/errors"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/contextutil"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/response"
	"github.com/Thato402/employee-attendance-tracker/internal/token"
)

// AuthMiddleware gates protected routes on a bearer token. A missing token
// and an invalid one are distinct failures: the former is the
// missing-credential class (401), the latter present-but-bad (403). On
// success the resolved identity is attached to both the gin context and the
// request context, and scopes everything downstream in the same request.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			e := autherrors.ErrTokenRequired
			response.Error(c, e.HTTPStatus, e.Code, e.Message)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			e := autherrors.ErrInvalidToken
			response.Error(c, e.HTTPStatus, e.Code, e.Message)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("email", claims.Email)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
