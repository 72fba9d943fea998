package club

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pitchup/pkg/rmiddleware"
)

// ClubRoutes sets up all club-related routes
func ClubRoutes(router *gin.RouterGroup, service *Service, authMiddleware gin.HandlerFunc) {
	clubController := NewClubController(service)

	clubs := router.Group("/clubs")
	clubs.Use(authMiddleware)
	{
		clubs.GET("", clubController.GetAllClubs)
		clubs.POST("", rmiddleware.AdminMiddleware(), clubController.CreateClub)

		// caller's perspective
		clubs.GET("/my-clubs", clubController.GetMyClubs)
		clubs.GET("/invitations", clubController.GetMyInvitations)
		clubs.POST("/invitations/:invitationId/accept", clubController.RespondToInvitation(true))
		clubs.POST("/invitations/:invitationId/reject", clubController.RespondToInvitation(false))

		clubs.GET("/:id", clubController.GetClubByID)
		clubs.GET("/:id/members", clubController.GetClubMembers)
		clubs.POST("/:id/invite", clubController.InvitePlayer) // manager/captain checked in the service
		clubs.POST("/:id/join", clubController.JoinClub)
	}
}
