package repo

import (
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. Products are held in insertion order, which is also id
// order because ids are assigned sequentially.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository and assigns its id.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetByName retrieves a product by exact, case-sensitive name match.
func (r *InMemoryProductRepository) GetByName(name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// UpdateStock overwrites the quantity, price and timestamp of an existing product.
func (r *InMemoryProductRepository) UpdateStock(id, quantity, price int, updatedAt time.Time) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Quantity = quantity
			r.products[i].Price = price
			r.products[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return ErrProductNotFound
}

// GetAll retrieves all products in ascending id order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// IDs retrieves all product ids in ascending order.
func (r *InMemoryProductRepository) IDs() ([]int, error) {
	ids := make([]int, len(r.products))
	for i, p := range r.products {
		ids[i] = p.ID
	}
	return ids, nil
}

// Count returns the number of stored products.
func (r *InMemoryProductRepository) Count() (int, error) {
	return len(r.products), nil
}

// MinBy returns the product with the smallest value of f, first in id order
// on ties.
func (r *InMemoryProductRepository) MinBy(f Field) (models.Product, error) {
	return r.extreme(f, true)
}

// MaxBy returns the product with the largest value of f, first in id order
// on ties.
func (r *InMemoryProductRepository) MaxBy(f Field) (models.Product, error) {
	return r.extreme(f, false)
}

// Prices returns every stored price in id order.
func (r *InMemoryProductRepository) Prices() ([]int, error) {
	prices := make([]int, len(r.products))
	for i, p := range r.products {
		prices[i] = p.Price
	}
	return prices, nil
}

func (r *InMemoryProductRepository) extreme(f Field, min bool) (models.Product, error) {
	if len(r.products) == 0 {
		return models.Product{}, ErrNoProducts
	}
	// Strict comparisons keep the earliest record on ties.
	best := r.products[0]
	for _, p := range r.products[1:] {
		if (min && fieldLess(f, p, best)) || (!min && fieldLess(f, best, p)) {
			best = p
		}
	}
	return best, nil
}

func fieldLess(f Field, a, b models.Product) bool {
	switch f {
	case FieldPrice:
		return a.Price < b.Price
	case FieldQuantity:
		return a.Quantity < b.Quantity
	case FieldUpdatedAt:
		return a.UpdatedAt.Before(b.UpdatedAt)
	}
	return false
}
