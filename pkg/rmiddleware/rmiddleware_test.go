package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/pitchup/internal/common"
	"github.com/DhavalSuthar-24/pitchup/internal/models"
)

func serve(role *models.UserRole, mw gin.HandlerFunc) int {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		if role != nil {
			common.SetCaller(c, common.CallerIdentity{UserID: uuid.New(), Role: *role})
		}
		c.Next()
	}, mw, func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w.Code
}

func TestRoleMiddleware(t *testing.T) {
	player, organizer, admin := models.RolePlayer, models.RoleOrganizer, models.RoleAdmin

	assert.Equal(t, http.StatusUnauthorized, serve(nil, AdminMiddleware()))
	assert.Equal(t, http.StatusForbidden, serve(&player, AdminMiddleware()))
	assert.Equal(t, http.StatusForbidden, serve(&organizer, AdminMiddleware()))
	assert.Equal(t, http.StatusNoContent, serve(&admin, AdminMiddleware()))

	assert.Equal(t, http.StatusForbidden, serve(&player, OrganizerOrAdminMiddleware()))
	assert.Equal(t, http.StatusNoContent, serve(&organizer, OrganizerOrAdminMiddleware()))
	assert.Equal(t, http.StatusNoContent, serve(&admin, OrganizerOrAdminMiddleware()))
}
