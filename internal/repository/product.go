package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/productapi/productapi-go/internal/model"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyUpdate     = errors.New("update touches no column")
)

// ProductRepository handles product persistence operations.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns every product in store order. The result is never nil.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p := &model.Product{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name, price FROM products WHERE id = ?`, id).Scan(
		&p.ID, &p.Name, &p.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

// Create inserts a product and sets the generated ID on it.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO products (name, price) VALUES (?, ?)`, p.Name, p.Price)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// Update writes only the columns present in u.
func (r *ProductRepository) Update(ctx context.Context, id int64, u model.ProductUpdate) error {
	if u.Empty() {
		return ErrEmptyUpdate
	}

	query, args := buildUpdateQuery(id, u)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// Delete removes a product by ID.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// buildUpdateQuery renders a parameterized UPDATE for the supplied columns.
// Column names are fixed; only values travel as arguments.
func buildUpdateQuery(id int64, u model.ProductUpdate) (string, []any) {
	var (
		sets []string
		args []any
	)
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *u.Price)
	}
	args = append(args, id)

	return "UPDATE products SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
