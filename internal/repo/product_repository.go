package repo

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// Field names a product column usable for extreme-value lookups.
type Field string

const (
	FieldPrice     Field = "price"
	FieldQuantity  Field = "quantity"
	FieldUpdatedAt Field = "updated_at"
)

func (f Field) column() (string, bool) {
	switch f {
	case FieldPrice, FieldQuantity, FieldUpdatedAt:
		return string(f), true
	}
	return "", false
}

// ProductRepository defines the interface for product data operations.
// There is no delete: records only ever accumulate or get overwritten.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetByName(name string) (models.Product, error)
	GetByID(id int) (models.Product, error)
	UpdateStock(id, quantity, price int, updatedAt time.Time) error
	GetAll() ([]models.Product, error)
	IDs() ([]int, error)
	Count() (int, error)
	MinBy(f Field) (models.Product, error)
	MaxBy(f Field) (models.Product, error)
	Prices() ([]int, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrNoProducts is returned by aggregate lookups on an empty repository.
var ErrNoProducts = errors.New("no products in the inventory")
