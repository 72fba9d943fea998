package player

import "github.com/gin-gonic/gin"

func RegisterPlayerRoutes(router *gin.RouterGroup, service *Service, authMiddleware gin.HandlerFunc) {
	playerController := NewPlayerController(service)

	players := router.Group("/players")
	{
		players.GET("", playerController.ListPlayers)
		players.GET("/email/:email", playerController.GetPlayerByEmail)
		players.GET("/:id", playerController.GetPlayer)

		players.POST("", authMiddleware, playerController.CreatePlayer)
		players.PUT("/:id", authMiddleware, playerController.UpdatePlayer)
	}
}
