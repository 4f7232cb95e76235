package api

import (
	"errors"
	"net/http"

	reqdto "gavel/internal/handler/dto/request"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userCommands commands.UserCommands
}

func NewUserHandler(userCommands commands.UserCommands) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
	}
}

// @Summary Update verification flag
// @Description Set or revoke a user's account verification
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateVerificationRequest true "Verification flag"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/verification [patch]
func (h *UserHandler) SetVerified(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	var req reqdto.UpdateVerificationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.userCommands.SetVerified(c.Request.Context(), id, *req.Verified); err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
