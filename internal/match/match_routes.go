package match

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/pkg/rmiddleware"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, service *Service, authMiddleware gin.HandlerFunc) {
	matchController := NewMatchController(service)

	authRoutes := router.Group("/matches")
	authRoutes.Use(authMiddleware)
	{
		authRoutes.POST("", rmiddleware.OrganizerOrAdminMiddleware(), matchController.CreateMatch)
		authRoutes.GET("", matchController.GetMatches)
		authRoutes.POST("/results", matchController.SubmitMatchResult)
		authRoutes.GET("/:id", matchController.GetMatchByID)

		// Roster and status; organizer checks happen in the service
		authRoutes.POST("/:id/join", matchController.JoinMatch)
		authRoutes.POST("/:id/balance-teams", matchController.BalanceTeams)
		authRoutes.PUT("/:id/status", matchController.UpdateMatchStatus)
	}
}
