package repositories

import (
	"sync"

	"github.com/KayisiMuhendisi/Adisyon/internal/models"
)

// CatalogRepository stores products grouped by fixed menu categories. The
// category set is fixed at construction; products are kept in insertion
// order and name lookups scan categories in declaration order, then
// products in insertion order.
type CatalogRepository interface {
	Categories() []string
	AddProduct(category string, product models.Product) error
	ListProducts(category string) []models.Product
	GetProduct(productName string) (models.Product, error)
	UpdateStock(productName string, newStock int) error
	ReduceStock(productName string) error
}

type inMemoryCatalogRepository struct {
	mu         sync.RWMutex
	categories []string
	products   map[string][]models.Product
}

// NewCatalogRepository creates an in-memory catalog with the given fixed
// category names. Duplicate names are collapsed to their first mention.
func NewCatalogRepository(categories []string) CatalogRepository {
	products := make(map[string][]models.Product, len(categories))
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		if _, ok := products[category]; ok {
			continue
		}
		products[category] = nil
		names = append(names, category)
	}
	return &inMemoryCatalogRepository{categories: names, products: products}
}

func (r *inMemoryCatalogRepository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

func (r *inMemoryCatalogRepository) AddProduct(category string, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[category]; !ok {
		return ErrCategoryNotFound
	}
	r.products[category] = append(r.products[category], product)
	return nil
}

// ListProducts returns the category's products in insertion order. An
// unknown category yields an empty slice, not an error.
func (r *inMemoryCatalogRepository) ListProducts(category string) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.products[category]
	out := make([]models.Product, len(stored))
	copy(out, stored)
	return out
}

func (r *inMemoryCatalogRepository) GetProduct(productName string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		for _, product := range r.products[category] {
			if product.Name == productName {
				return product, nil
			}
		}
	}
	return models.Product{}, ErrNotFound
}

// UpdateStock sets the stock of the first product matching productName to
// newStock. This is an absolute set, not a delta.
func (r *inMemoryCatalogRepository) UpdateStock(productName string, newStock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		for i := range r.products[category] {
			if r.products[category][i].Name == productName {
				r.products[category][i].Stock = newStock
				return nil
			}
		}
	}
	return ErrNotFound
}

// ReduceStock decrements the first matching product's stock by one. A
// product already at zero is left untouched and reported as out of stock,
// so stock never goes negative.
func (r *inMemoryCatalogRepository) ReduceStock(productName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		for i := range r.products[category] {
			if r.products[category][i].Name == productName {
				if r.products[category][i].Stock == 0 {
					return ErrOutOfStock
				}
				r.products[category][i].Stock--
				return nil
			}
		}
	}
	return ErrNotFound
}
