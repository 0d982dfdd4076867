package handlers

import (
	"errors"
	"net/http"

	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/gin-gonic/gin"
)

// GetUser returns a user profile without the credential field.
func (h *Handler) GetUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUser(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user.ID, user.Username, user.FullName, user.Avatar, user.Role))
}
