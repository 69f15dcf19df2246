package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KayisiMuhendisi/Adisyon/internal/services"
	"github.com/KayisiMuhendisi/Adisyon/pkg/utils"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetCategories lists the fixed menu category names in declaration order.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.Categories()})
}

// GetProducts lists the products of one category in insertion order. An
// unknown category yields an empty list, not an error.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	category := c.Param("name")
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": h.catalogService.ListProducts(category),
	})
}

// CreateProduct adds a product to an existing category.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProduct: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	product, err := h.catalogService.AddProduct(req)
	if err != nil {
		utils.LogError(err, "CreateProduct: Error from catalogService.AddProduct")
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu category not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product data.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add product.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateStock sets a product's stock to an absolute value. This is the
// manual stock-correction entry point; it overrides any prior decrements.
func (h *CatalogHandler) UpdateStock(c *gin.Context) {
	productName := c.Param("name")
	if utils.IsEmpty(productName) {
		utils.RespondValidationFailed(c, "product name must not be empty")
		return
	}

	var req services.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStock: Failed to bind JSON for product "+productName)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	product, err := h.catalogService.UpdateStock(productName, req.Stock)
	if err != nil {
		utils.LogError(err, "UpdateStock: Error from catalogService.UpdateStock for product "+productName)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid stock value.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, product)
}
