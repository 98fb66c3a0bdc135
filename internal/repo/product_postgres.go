package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, quantity, price, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Quantity, p.Price, p.UpdatedAt).Scan(&p.ID)
	return p, err
}

func (r *PostgresProductRepository) GetByName(name string) (models.Product, error) {
	query := `SELECT id, name, quantity, price, updated_at FROM products WHERE name = $1 ORDER BY id LIMIT 1`
	return r.queryOne(query, name)
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, quantity, price, updated_at FROM products WHERE id = $1`
	return r.queryOne(query, id)
}

func (r *PostgresProductRepository) UpdateStock(id, quantity, price int, updatedAt time.Time) error {
	query := `UPDATE products SET quantity = $1, price = $2, updated_at = $3 WHERE id = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, quantity, price, updatedAt, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, quantity, price, updated_at FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) IDs() ([]int, error) {
	query := `SELECT id FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresProductRepository) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func (r *PostgresProductRepository) MinBy(f Field) (models.Product, error) {
	return r.extremeBy(f, "ASC")
}

func (r *PostgresProductRepository) MaxBy(f Field) (models.Product, error) {
	return r.extremeBy(f, "DESC")
}

func (r *PostgresProductRepository) extremeBy(f Field, dir string) (models.Product, error) {
	col, ok := f.column()
	if !ok {
		return models.Product{}, fmt.Errorf("unknown product field %q", f)
	}
	// Secondary sort on id keeps ties deterministic: first in id order wins.
	query := fmt.Sprintf(`SELECT id, name, quantity, price, updated_at FROM products ORDER BY %s %s, id LIMIT 1`, col, dir)
	p, err := r.queryOne(query)
	if errors.Is(err, ErrProductNotFound) {
		return models.Product{}, ErrNoProducts
	}
	return p, err
}

func (r *PostgresProductRepository) Prices() ([]int, error) {
	query := `SELECT price FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []int
	for rows.Next() {
		var p int
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (r *PostgresProductRepository) queryOne(query string, args ...any) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
