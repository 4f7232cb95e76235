package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"gavel/internal/pkg/errs"
	"gavel/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PermissionMiddleware struct {
	checker usecase.PermissionChecker
}

func NewPermissionMiddleware(checker usecase.PermissionChecker) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
	}
}

// RequirePermission must run after RequireAuth so the role is in context.
func (m *PermissionMiddleware) RequirePermission(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		allowed, err := m.checker.HasPermission(c.Request.Context(), role, action)
		if err != nil {
			if errors.Is(err, errs.ErrRoleNotFound) {
				c.JSON(http.StatusForbidden, gin.H{
					"error": "Insufficient permissions",
				})
				c.Abort()
				return
			}
			slog.Error("Permission check failed", "role", role.String(), "action", action, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
