package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/repository"
)

var (
	ErrProductFieldsRequired = errors.New("name and price are required")
	ErrUpdateFieldsRequired  = errors.New("at least one field is required")
	ErrEmptyName             = errors.New("name cannot be empty")
	ErrProductNotFound       = errors.New("product not found")
)

// ProductStore is the persistence the product service needs.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, id int64, u model.ProductUpdate) error
	Delete(ctx context.Context, id int64) error
}

// ProductService handles product business logic.
type ProductService struct {
	repo ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(repo ProductStore) *ProductService {
	return &ProductService{repo: repo}
}

// ListProducts returns all products.
func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, translateProductErr("getting product", err)
	}
	return *p, nil
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.Product, error) {
	if req.Name == "" || req.Price == nil {
		return model.Product{}, ErrProductFieldsRequired
	}

	p := model.Product{Name: req.Name, Price: *req.Price}
	if err := s.repo.Create(ctx, &p); err != nil {
		return model.Product{}, fmt.Errorf("creating product: %w", err)
	}

	return p, nil
}

// ValidateProductUpdate checks an update body without touching storage.
func ValidateProductUpdate(req model.UpdateProductRequest) error {
	if req.Name == nil && req.Price == nil {
		return ErrUpdateFieldsRequired
	}
	if req.Name != nil && *req.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// UpdateProduct applies a partial update and returns the stored record.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req model.UpdateProductRequest) (model.Product, error) {
	if err := ValidateProductUpdate(req); err != nil {
		return model.Product{}, err
	}

	u := model.ProductUpdate{Name: req.Name, Price: req.Price}
	if err := s.repo.Update(ctx, id, u); err != nil {
		return model.Product{}, translateProductErr("updating product", err)
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return translateProductErr("deleting product", s.repo.Delete(ctx, id))
}

func translateProductErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrProductNotFound):
		return ErrProductNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
