package models

import "time"

// Product represents a product record in the inventory. Price is stored as
// integer cents so re-entering the same amount always yields the same value.
type Product struct {
	ID        int
	Name      string
	Quantity  int
	Price     int
	UpdatedAt time.Time
}
