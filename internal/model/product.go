package model

// Product is a row of the products table and also its API representation.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateProductRequest represents a product creation request.
// Price is a pointer so that an explicit 0 is distinguishable from absence.
type CreateProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// UpdateProductRequest represents a partial product update.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// ProductUpdate is the set of columns a store update should write.
type ProductUpdate struct {
	Name  *string
	Price *float64
}

// Empty reports whether the update would touch no column.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
