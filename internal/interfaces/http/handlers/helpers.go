package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/shared/authorization"
	"github.com/resumelift/resumelift/internal/shared/constants"
	"github.com/resumelift/resumelift/internal/shared/utils"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
// A missing or mistyped value means the route was wired without RequireAuth;
// the caller should treat false as a 401.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func currentRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}

func abortUnauthenticated(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
}
