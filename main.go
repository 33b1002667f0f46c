package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/entity"
	"backend/middlewares"
	"backend/routes"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// join table (many2many MenuItem<->Addon)
	if err := db.SetupJoinTable(&entity.MenuItem{}, "Addons", &entity.MenuItemAddon{}); err != nil {
		log.Fatalf("setup join table failed: %v", err)
	}

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemoCatalog(); err != nil {
			log.Fatalf("seed demo catalog failed: %v", err)
		}
	}

	// Fan-out hub for kitchen displays
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
