// Package catalog implements the inventory business operations: adding and
// updating products, lookups for display, and bulk CSV import.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/clean"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// AddResult tells the caller how an AddOrUpdate submission was settled.
type AddResult int

const (
	Discarded AddResult = iota
	Added
	Updated
)

type Service struct {
	repo repo.ProductRepository
	now  func() time.Time
	log  *slog.Logger
}

func NewService(r repo.ProductRepository, log *slog.Logger) *Service {
	return &Service{repo: r, now: time.Now, log: log}
}

// AddOrUpdate stores a product submission. An existing product with the same
// name is overwritten without confirmation; a new name is inserted only when
// confirm approves the staged record. Name matching is case-sensitive and
// exact. The overwrite-silently / confirm-inserts asymmetry is deliberate.
func (s *Service) AddOrUpdate(name string, quantity, price int, confirm func(models.Product) bool) (AddResult, models.Product, error) {
	existing, err := s.repo.GetByName(name)
	switch {
	case err == nil:
		existing.Quantity = quantity
		existing.Price = price
		existing.UpdatedAt = s.now()
		if err := s.repo.UpdateStock(existing.ID, quantity, price, existing.UpdatedAt); err != nil {
			return Discarded, models.Product{}, err
		}
		s.log.Info("product updated", "name", name, "id", existing.ID)
		return Updated, existing, nil

	case errors.Is(err, repo.ErrProductNotFound):
		staged := models.Product{Name: name, Quantity: quantity, Price: price, UpdatedAt: s.now()}
		if !confirm(staged) {
			return Discarded, models.Product{}, nil
		}
		created, err := s.repo.Create(staged)
		if err != nil {
			return Discarded, models.Product{}, err
		}
		s.log.Info("product added", "name", name, "id", created.ID)
		return Added, created, nil

	default:
		return Discarded, models.Product{}, err
	}
}

// Get returns the product with the given id for display.
func (s *Service) Get(id int) (models.Product, error) {
	return s.repo.GetByID(id)
}

// List returns every product in ascending id order.
func (s *Service) List() ([]models.Product, error) {
	return s.repo.GetAll()
}

// IDList returns the live product ids in ascending order, or
// repo.ErrNoProducts when the table is empty. Callers prompting for an id
// must guard with it before promising a valid range.
func (s *Service) IDList() ([]int, error) {
	ids, err := s.repo.IDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, repo.ErrNoProducts
	}
	return ids, nil
}

// ImportSummary reports what a CSV import did.
type ImportSummary struct {
	Inserted int
	Skipped  int
}

var importColumns = []string{"product_name", "product_quantity", "product_price", "date_updated"}

// ImportCSV loads rows from a seed or backup CSV. Names already present in
// the store are skipped without touching the stored record, unlike the
// interactive add flow which overwrites them. Rows are committed one by one;
// a bad row aborts the import and leaves earlier rows in place.
func (s *Service) ImportCSV(r io.Reader) (ImportSummary, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return ImportSummary{}, fmt.Errorf("read csv header: %w", err)
	}
	index := map[string]int{}
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return ImportSummary{}, fmt.Errorf("csv header missing column %q", col)
		}
	}

	var sum ImportSummary
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("row %d: %w", row, err)
		}

		name := record[index["product_name"]]
		_, err = s.repo.GetByName(name)
		if err == nil {
			sum.Skipped++
			continue
		}
		if !errors.Is(err, repo.ErrProductNotFound) {
			return sum, err
		}

		quantity, err := clean.Quantity(record[index["product_quantity"]])
		if err != nil {
			return sum, fmt.Errorf("row %d: %w", row, err)
		}
		price, err := clean.Price(record[index["product_price"]])
		if err != nil {
			return sum, fmt.Errorf("row %d: %w", row, err)
		}
		updated, err := parseImportDate(record[index["date_updated"]])
		if err != nil {
			return sum, fmt.Errorf("row %d: %w", row, err)
		}

		p := models.Product{Name: name, Quantity: quantity, Price: price, UpdatedAt: updated}
		if _, err := s.repo.Create(p); err != nil {
			return sum, fmt.Errorf("row %d: %w", row, err)
		}
		sum.Inserted++
	}

	s.log.Info("csv import finished", "inserted", sum.Inserted, "skipped", sum.Skipped)
	return sum, nil
}

// parseImportDate accepts the seed month/day/year form and the full
// timestamp form written by backups, so an export re-imports cleanly.
func parseImportDate(s string) (time.Time, error) {
	d, err := clean.Date(s)
	if err == nil {
		return d, nil
	}
	if t, terr := time.Parse(clean.StampLayout, s); terr == nil {
		return t, nil
	}
	return time.Time{}, err
}
