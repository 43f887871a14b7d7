package main

import (
	"log"

	"eduequi/catalog"
	"eduequi/config"
	courseControllers "eduequi/controllers/course"
	mediaControllers "eduequi/controllers/media"
	"eduequi/database"
	courseRoutes "eduequi/routers/courseRoutes"
	mediaRoutes "eduequi/routers/mediaRoutes"
	studentRoutes "eduequi/routers/studentRoutes"
	ttsRoutes "eduequi/routers/ttsRoutes"
	"eduequi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	client, db := database.Connect()
	defer database.Disconnect(client)

	cat := catalog.New(db)

	app := fiber.New(fiber.Config{
		// Oversized uploads are rejected before the body is buffered.
		BodyLimit: config.AppConfig.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve stored video files
	app.Static("/uploads/videos", config.AppConfig.UploadDir)

	courseRoutes.SetupCourseRoutes(app, courseControllers.New(cat))
	mediaRoutes.SetupVideoRoutes(app, mediaControllers.New(cat, config.AppConfig.UploadDir))
	studentRoutes.SetupStudentRoutes(app)
	ttsRoutes.SetupTTSRoutes(app)

	sweeper := utils.StartCleanupScheduler(cat, config.AppConfig.UploadDir)
	defer sweeper.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
