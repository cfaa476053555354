package main

import (
	"fmt"
	"log"

	"foodorder/configs"
	"foodorder/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
