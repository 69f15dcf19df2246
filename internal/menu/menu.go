// Package menu seeds the product catalog, either from a YAML menu file or
// from the built-in menu of the original till.
package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KayisiMuhendisi/Adisyon/internal/models"
	"github.com/KayisiMuhendisi/Adisyon/internal/repositories"
)

// File is the on-disk menu layout.
type File struct {
	Categories []Category `yaml:"categories"`
}

// Category is one category block of a menu file.
type Category struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

// Item is one product entry of a menu file.
type Item struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Stock int     `yaml:"stock"`
}

// Load reads and validates a YAML menu file.
func Load(path string) ([]models.MenuCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", path, err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("menu file %s declares no categories", path)
	}

	out := make([]models.MenuCategory, 0, len(f.Categories))
	for _, category := range f.Categories {
		if category.Name == "" {
			return nil, fmt.Errorf("menu file %s: category with empty name", path)
		}
		mc := models.MenuCategory{Name: category.Name}
		for _, item := range category.Items {
			if item.Name == "" {
				return nil, fmt.Errorf("menu file %s: item with empty name in category %s", path, category.Name)
			}
			if item.Price < 0 {
				return nil, fmt.Errorf("menu file %s: negative price for %s", path, item.Name)
			}
			if item.Stock < 0 {
				return nil, fmt.Errorf("menu file %s: negative stock for %s", path, item.Name)
			}
			mc.Products = append(mc.Products, models.Product{Name: item.Name, Price: item.Price, Stock: item.Stock})
		}
		out = append(out, mc)
	}
	return out, nil
}

// Default is the menu the till opened with before menu files existed.
func Default() []models.MenuCategory {
	return []models.MenuCategory{
		{Name: "Kahvaltı", Products: []models.Product{
			{Name: "Tost", Price: 80, Stock: 50},
			{Name: "Yumurta", Price: 30, Stock: 50},
			{Name: "Pancakes", Price: 50, Stock: 50},
			{Name: "Serpme Kahvaltı", Price: 250, Stock: 50},
			{Name: "Tabakta Kahvaltı", Price: 180, Stock: 50},
		}},
		{Name: "İçecekler", Products: []models.Product{
			{Name: "Espresso", Price: 55, Stock: 50},
			{Name: "Cappuccino", Price: 75, Stock: 50},
			{Name: "Latte", Price: 80, Stock: 50},
			{Name: "Çay", Price: 25, Stock: 50},
			{Name: "Kola", Price: 50, Stock: 50},
		}},
		{Name: "Ana Yemekler", Products: []models.Product{
			{Name: "Pizza", Price: 150, Stock: 50},
			{Name: "Burger", Price: 110, Stock: 50},
			{Name: "Makarna", Price: 125, Stock: 50},
			{Name: "Tavuk Sote", Price: 180, Stock: 50},
			{Name: "Et Sote", Price: 220, Stock: 50},
		}},
	}
}

// Names returns the category names in declaration order.
func Names(categories []models.MenuCategory) []string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return names
}

// Seed registers every product of categories into the catalog repository.
func Seed(repo repositories.CatalogRepository, categories []models.MenuCategory) error {
	for _, category := range categories {
		for _, product := range category.Products {
			if err := repo.AddProduct(category.Name, product); err != nil {
				return fmt.Errorf("failed to seed %s into %s: %w", product.Name, category.Name, err)
			}
		}
	}
	return nil
}
