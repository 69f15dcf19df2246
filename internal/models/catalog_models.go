package models

// Product is a single sellable item within a menu category. Product names
// are used as lookup keys across the whole catalog; uniqueness across
// categories is not enforced and the first match in scan order wins.
type Product struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Stock int     `json:"stock" binding:"gte=0"`
}

// MenuCategory groups products under a fixed category name. The category
// set is decided once at startup, from the menu file or the built-in menu.
type MenuCategory struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
