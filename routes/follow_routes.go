package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/follow-net/api-go/controllers"
	"github.com/follow-net/api-go/middleware"
)

func SetupFollowRoutes(r *gin.Engine, followController *controllers.FollowController) {
	follows := r.Group("/follows")
	follows.Use(middleware.AuthMiddleware())
	{
		follows.GET("/followers", followController.GetFollowers)
		follows.GET("/following", followController.GetFollowing)
		follows.POST("/request", followController.RequestFollow)
		follows.POST("/response", followController.RespondFollow)
	}
}
