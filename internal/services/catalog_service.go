package services

import (
	"errors"
	"fmt"

	"github.com/KayisiMuhendisi/Adisyon/internal/models"
	"github.com/KayisiMuhendisi/Adisyon/internal/repositories"
)

// Custom Errors for catalog and stock operations.
var (
	ErrCategoryNotFound = errors.New("menu category not found")
	ErrProductNotFound  = errors.New("product not found in any category")
	ErrOutOfStock       = errors.New("product is out of stock")
	ErrValidation       = errors.New("validation error")
)

// --- DTOs ---

// AddProductRequest creates a new product inside an existing category.
type AddProductRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Stock    int     `json:"stock" binding:"gte=0"`
}

// UpdateStockRequest sets a product's remaining stock to an absolute value.
type UpdateStockRequest struct {
	Stock int `json:"stock" binding:"gte=0"`
}

// --- CatalogService Interface ---

// CatalogService is the menu catalog plus its stock ledger. ReduceStock is
// the only decrement path used by ordering; UpdateStock is the manual
// stock-correction entry point and performs an absolute set.
type CatalogService interface {
	Categories() []string
	AddProduct(req AddProductRequest) (*models.Product, error)
	ListProducts(category string) []models.Product
	UpdateStock(productName string, newStock int) (*models.Product, error)
	ReduceStock(productName string) error
}

// --- catalogService Implementation ---

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(cr repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: cr}
}

func (s *catalogService) Categories() []string {
	return s.catalogRepo.Categories()
}

func (s *catalogService) AddProduct(req AddProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: product name must not be empty", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	product := models.Product{Name: req.Name, Price: req.Price, Stock: req.Stock}
	if err := s.catalogRepo.AddProduct(req.Category, product); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, req.Category)
		}
		return nil, fmt.Errorf("failed to add product %s: %w", req.Name, err)
	}
	return &product, nil
}

// ListProducts returns the category's products in insertion order. Unknown
// categories read as empty, mirroring the lenient read path of the till.
func (s *catalogService) ListProducts(category string) []models.Product {
	return s.catalogRepo.ListProducts(category)
}

func (s *catalogService) UpdateStock(productName string, newStock int) (*models.Product, error) {
	if newStock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	if err := s.catalogRepo.UpdateStock(productName, newStock); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productName)
		}
		return nil, fmt.Errorf("failed to update stock for %s: %w", productName, err)
	}

	product, err := s.catalogRepo.GetProduct(productName)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read product %s: %w", productName, err)
	}
	return &product, nil
}

// ReduceStock removes one unit of the named product. At zero stock the
// catalog is left untouched and the caller gets ErrOutOfStock.
func (s *catalogService) ReduceStock(productName string) error {
	err := s.catalogRepo.ReduceStock(productName)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrOutOfStock):
		return fmt.Errorf("%w: %s", ErrOutOfStock, productName)
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrProductNotFound, productName)
	default:
		return fmt.Errorf("failed to reduce stock for %s: %w", productName, err)
	}
}
