package router

import (
	"github.com/gin-gonic/gin"

	"github.com/KayisiMuhendisi/Adisyon/internal/handlers"
)

// SetupMenuRoutes sets up the menu catalog and stock routes.
func SetupMenuRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	menuRoutes := apiGroup.Group("/menu")
	{
		menuRoutes.GET("/categories", catalogHandler.GetCategories)
		menuRoutes.GET("/categories/:name/products", catalogHandler.GetProducts)
		menuRoutes.POST("/products", catalogHandler.CreateProduct)
		menuRoutes.PATCH("/products/:name/stock", catalogHandler.UpdateStock)
	}
}

// SetupTableRoutes sets up the table grid and selection routes.
func SetupTableRoutes(apiGroup *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	tableRoutes := apiGroup.Group("/tables")
	{
		tableRoutes.GET("", sessionHandler.GetTables)
		tableRoutes.POST("/:name/open", sessionHandler.OpenTable)
	}
}

// SetupSessionRoutes sets up the active-table order routes.
func SetupSessionRoutes(apiGroup *gin.RouterGroup, sessionHandler *handlers.SessionHandler) {
	sessionRoutes := apiGroup.Group("/session")
	{
		sessionRoutes.GET("/table", sessionHandler.GetCurrentTable)
		sessionRoutes.POST("/orders", sessionHandler.AddOrder)
		sessionRoutes.DELETE("/orders/:product", sessionHandler.RemoveOrder)
		sessionRoutes.POST("/discount", sessionHandler.ApplyDiscount)
		sessionRoutes.POST("/close", sessionHandler.CloseTable)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reports")
	{
		reportRoutes.GET("/daily", reportHandler.GetDailyReport)
		reportRoutes.GET("/settlements", reportHandler.GetSettlements)
	}
}
