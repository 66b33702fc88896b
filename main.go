package main

import (
	"log"
	"os"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/middleware"
	"github.com/FAMH/Collection-Gateway/src/routes"
	"github.com/FAMH/Collection-Gateway/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v\n", err)
	}
	defer logger.Sync()

	// Upstream museum API connection
	client, err := api.NewClientFromEnv(logger)
	if err != nil {
		log.Fatalf("Error configuring upstream client: %v\n", err)
	}

	// Session token secret
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatalf("JWT_SECRET is required\n")
	}
	middleware.SetSecretKey(secret)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	registry := services.NewCollectionRegistry(client, logger)
	formService := services.NewFormService(client, logger)
	departmentService := services.NewDepartmentService(client, logger)
	reportService := services.NewReportService(client, logger)
	userService := services.NewUserService(client)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupCollectionRoutes(router, registry)
	routes.SetupArtworkRoutes(router, formService, client)
	routes.SetupArtistRoutes(router, formService, client)
	routes.SetupDepartmentRoutes(router, departmentService, formService)
	routes.SetupReportRoutes(router, reportService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello from Gin!")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
