package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/follow-net/api-go/controllers"
	"github.com/follow-net/api-go/middleware"
)

func SetupCommandRoutes(r *gin.Engine, commandController *controllers.CommandController) {
	commands := r.Group("/commands")
	{
		commands.GET("", commandController.GetCommands)
		commands.POST("", middleware.AuthMiddleware(), commandController.PostCommands)
	}
}
