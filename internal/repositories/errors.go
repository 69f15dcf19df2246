package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("requested record not found")

	// ErrCategoryNotFound is returned when a write targets an
	// unregistered menu category.
	ErrCategoryNotFound = errors.New("menu category not found")

	// ErrOutOfStock is returned when a decrement hits a product whose
	// stock is already zero.
	ErrOutOfStock = errors.New("product out of stock")
)
