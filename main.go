package main

import (
	"acai_pdv/config"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	origin := config.Config("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartPriorityScheduler()
	defer helper.StopPriorityScheduler()
	helper.StartDailyScheduler()
	defer helper.StopDailyScheduler()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
