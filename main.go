package main

import (
	"os"

	"clinic-portal/config"
	_ "clinic-portal/docs"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/routes"

	"github.com/gin-gonic/gin"
)

// @title Clinic Portal API
// @version 1.0
// @description Patient-facing portal for a polyclinic: pharmacy cart and checkout, appointment and lab test booking, medical records.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	config.InitLogger(config.AppConfig.AppEnv)
	defer config.SyncLogger()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		config.Log.Fatal("Failed to create upload directory", config.Field("error", err.Error()))
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	config.Log.Info("Server starting",
		config.Field("port", config.AppConfig.Port),
		config.Field("env", config.AppConfig.AppEnv),
		config.Field("backend", config.AppConfig.APIBaseURL),
	)

	if err := router.Run(port); err != nil {
		config.Log.Fatal("Failed to start server", config.Field("error", err.Error()))
	}
}
