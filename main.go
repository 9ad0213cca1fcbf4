package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/follow-net/api-go/config"
	"github.com/follow-net/api-go/routes"
	"github.com/follow-net/api-go/services"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize database
	db := config.InitDB()

	// The command log lives in redis when configured, in memory otherwise.
	var commandStore services.CommandLogStore = services.NewMemoryCommandLog()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := config.NewRedisClient(addr)
		if err != nil {
			log.Fatal("Failed to connect to redis:", err)
		}
		commandStore = services.NewRedisCommandLog(client)
	}

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, commandStore)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
