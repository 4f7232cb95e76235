package middleware

import (
	"log/slog"
	"net/http"

	"gavel/internal/infra"
	"gavel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VerifiedMiddleware struct {
	users commands.UserRepository
}

func NewVerifiedMiddleware(users commands.UserRepository) *VerifiedMiddleware {
	return &VerifiedMiddleware{
		users: users,
	}
}

// RequireVerified reads the flag from the store on every request so a
// revoked verification takes effect immediately, not at token expiry.
func (m *VerifiedMiddleware) RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		snapshot, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
				c.Abort()
				return
			}
			slog.Error("Verification lookup failed", "user_id", userID.String(), "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !snapshot.IsVerified {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account verification required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
