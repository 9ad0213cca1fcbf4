package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/follow-net/api-go/controllers"
	"github.com/follow-net/api-go/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, commandStore services.CommandLogStore) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	followController := controllers.NewFollowController(db)
	commandController := controllers.NewCommandController(commandStore)

	SetupUserRoutes(r, authController, userController)
	SetupFollowRoutes(r, followController)
	SetupCommandRoutes(r, commandController)
}
