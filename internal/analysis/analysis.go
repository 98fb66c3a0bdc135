// Package analysis computes aggregate statistics over the product table.
package analysis

import (
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// Report holds the full set of inventory statistics. All fields are
// produced together; a failed query aborts the whole report.
type Report struct {
	TotalProducts   int
	MostExpensive   models.Product
	LeastExpensive  models.Product
	AveragePrice    float64 // cents, unrounded
	Oldest          models.Product
	Newest          models.Product
	HighestQuantity models.Product
	LowestQuantity  models.Product
}

// Run computes the report from store aggregates. An empty table is a
// precondition failure and yields repo.ErrNoProducts.
func Run(r repo.ProductRepository) (Report, error) {
	count, err := r.Count()
	if err != nil {
		return Report{}, err
	}
	if count == 0 {
		return Report{}, repo.ErrNoProducts
	}

	rep := Report{TotalProducts: count}
	if rep.MostExpensive, err = r.MaxBy(repo.FieldPrice); err != nil {
		return Report{}, err
	}
	if rep.LeastExpensive, err = r.MinBy(repo.FieldPrice); err != nil {
		return Report{}, err
	}
	if rep.Oldest, err = r.MinBy(repo.FieldUpdatedAt); err != nil {
		return Report{}, err
	}
	if rep.Newest, err = r.MaxBy(repo.FieldUpdatedAt); err != nil {
		return Report{}, err
	}
	if rep.HighestQuantity, err = r.MaxBy(repo.FieldQuantity); err != nil {
		return Report{}, err
	}
	if rep.LowestQuantity, err = r.MinBy(repo.FieldQuantity); err != nil {
		return Report{}, err
	}

	prices, err := r.Prices()
	if err != nil {
		return Report{}, err
	}
	var total int
	for _, p := range prices {
		total += p
	}
	// Kept as a float so the mean is not rounded before display.
	rep.AveragePrice = float64(total) / float64(len(prices))

	return rep, nil
}
