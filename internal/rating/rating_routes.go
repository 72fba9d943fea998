package rating

import "github.com/gin-gonic/gin"

func RegisterRatingRoutes(router *gin.RouterGroup, service *Service, authMiddleware gin.HandlerFunc) {
	ratingController := NewRatingController(service)

	ratings := router.Group("/ratings")
	ratings.Use(authMiddleware)
	{
		ratings.POST("", ratingController.CreateRating)
		ratings.GET("/player/:id", ratingController.GetPlayerRatings)
		ratings.GET("/match/:id", ratingController.GetMatchRatings)
	}
}
