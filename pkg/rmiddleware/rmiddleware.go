package rmiddleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
	"github.com/DhavalSuthar-24/pitchup/pkg/responses"
)

// RoleMiddleware admits callers holding any of the required roles.
// It must run after the auth middleware.
func RoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := common.GetCaller(c)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}

		for _, role := range requiredRoles {
			if caller.Role == role {
				c.Next()
				return
			}
		}
		responses.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RoleAdmin)
}

// OrganizerOrAdminMiddleware admits organizer-class callers.
func OrganizerOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RoleOrganizer, models.RoleAdmin)
}
