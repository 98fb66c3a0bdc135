// Package backup exports the product table to a CSV file.
package backup

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rogerio-castellano/inventory-manager/internal/clean"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

var header = []string{"product_id", "product_name", "product_quantity", "product_price", "date_updated"}

// Export writes every product in ascending id order and returns the number
// of rows written. Prices go out in the $D.DD form and dates as full
// timestamps, so an export fed back through the CSV importer reproduces the
// same cents and dates.
func Export(w io.Writer, r repo.ProductRepository) (int, error) {
	products, err := r.GetAll()
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, err
	}
	for _, p := range products {
		row := []string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.Itoa(p.Quantity),
			clean.HumanPrice(p.Price),
			clean.Stamp(p.UpdatedAt),
		}
		if err := cw.Write(row); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(products), nil
}
