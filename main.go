package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/minsmanse/bar/configs"
	"github.com/minsmanse/bar/middlewares"
	"github.com/minsmanse/bar/routes"
	"github.com/minsmanse/bar/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedIngredients(); err != nil {
		log.Fatalf("seed ingredients failed: %v", err)
	}

	// Realtime order feed
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("bar server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
