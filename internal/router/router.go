package router

import (
	"github.com/gin-gonic/gin"

	"github.com/KayisiMuhendisi/Adisyon/internal/handlers"
	"github.com/KayisiMuhendisi/Adisyon/internal/repositories"
	"github.com/KayisiMuhendisi/Adisyon/internal/services"
)

// Setup initializes the routing for the application: repositories feed
// services, services feed handlers, handlers hang off /api/v1.
func Setup(engine *gin.Engine, catalogRepo repositories.CatalogRepository, tableRepo repositories.TableRepository) {
	// Initialize Services
	catalogService := services.NewCatalogService(catalogRepo)
	sessionService := services.NewSessionService(tableRepo, catalogService)

	// Initialize Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	reportHandler := handlers.NewReportHandler(sessionService)

	apiV1 := engine.Group("/api/v1")

	SetupMenuRoutes(apiV1, catalogHandler)
	SetupTableRoutes(apiV1, sessionHandler)
	SetupSessionRoutes(apiV1, sessionHandler)
	SetupReportRoutes(apiV1, reportHandler)
}
