package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/shared/constants"
)

// RequireAdmin aborts the request unless the authenticated user carries an
// admin role. Expects the auth middleware to have stored the role in context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}
