package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/follow-net/api-go/controllers"
	"github.com/follow-net/api-go/middleware"
)

func SetupUserRoutes(r *gin.Engine, authController *controllers.AuthController, userController *controllers.UserController) {
	users := r.Group("/users")
	{
		users.POST("", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/refresh-token", authController.RefreshToken)

		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("", userController.GetUser)
			protected.POST("/logout", authController.Logout)
		}
	}
}
