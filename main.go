package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rewiselabs/rewise_neet_backend/middlewares"
	"github.com/rewiselabs/rewise_neet_backend/routers"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

func main() {
	err := util.DBConnectAndPopulateDBVar()
	if err != nil {
		fmt.Println(err.Error())
		log.Fatal("couldn't connect to the database")
	} else {
		fmt.Println("Connected to the database")
	}
	if err = util.CreateTableIfNotExists(); err != nil {
		log.Fatal("Couldn't create tables", err.Error())
	}
	fmt.Println("Tables Created")

	app := fiber.New()
	app.Use(middlewares.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:request_id}\n",
	}))
	app.Use(cors.New())

	routers.SetupRoutes(app)
	app.Use(middlewares.NotFound)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
