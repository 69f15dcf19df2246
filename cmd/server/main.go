package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/KayisiMuhendisi/Adisyon/internal/menu"
	"github.com/KayisiMuhendisi/Adisyon/internal/middleware"
	"github.com/KayisiMuhendisi/Adisyon/internal/models"
	"github.com/KayisiMuhendisi/Adisyon/internal/repositories"
	"github.com/KayisiMuhendisi/Adisyon/internal/router"
	"github.com/KayisiMuhendisi/Adisyon/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize Logger
	utils.InitLogger()

	// Menu: a YAML file pointed at by MENU_PATH, or the built-in menu.
	var categories []models.MenuCategory
	menuPath := os.Getenv("MENU_PATH")
	if menuPath != "" {
		loaded, err := menu.Load(menuPath)
		if err != nil {
			utils.LogError(err, "Failed to load menu file")
			log.Fatalf("Failed to load menu file %s: %v", menuPath, err)
		}
		categories = loaded
		utils.LogInfo("Menu loaded", map[string]interface{}{"path": menuPath, "categories": len(categories)})
	} else {
		categories = menu.Default()
		utils.LogInfo("Using built-in menu", map[string]interface{}{"categories": len(categories)})
	}

	catalogRepo := repositories.NewCatalogRepository(menu.Names(categories))
	if err := menu.Seed(catalogRepo, categories); err != nil {
		utils.LogError(err, "Failed to seed catalog")
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Tables are pre-allocated once per session.
	tableCount := getenvInt("TABLE_COUNT", 5)
	vipTableCount := getenvInt("VIP_TABLE_COUNT", 3)
	vipServiceFee := getenvFloat("VIP_SERVICE_FEE", 50)
	tableRepo := repositories.NewTableRepository(tableCount, vipTableCount, vipServiceFee)
	utils.LogInfo("Session tables allocated", map[string]interface{}{
		"tables":          tableCount,
		"vip_tables":      vipTableCount,
		"vip_service_fee": vipServiceFee,
	})

	engine := gin.Default()

	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, catalogRepo, tableRepo)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		log.Fatalf("Invalid %s value: %s", key, raw)
	}
	return v
}

func getenvFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Fatalf("Invalid %s value: %s", key, raw)
	}
	return v
}
