package dto

import "github.com/polkiloo/storemart/internal/domain/model"

// ProductRequest describes a vendor catalog write.
type ProductRequest struct {
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Active      bool    `json:"active"`
}

// ProductResponse is the storefront view of a catalog entry.
type ProductResponse struct {
	ID          int64   `json:"id"`
	VendorID    int64   `json:"vendor_id"`
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Active      bool    `json:"active"`
}

// NewProductResponse maps a product onto its JSON view.
func NewProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		VendorID:    product.VendorID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Active:      product.Active,
	}
}

// NewProductListResponse maps a product slice onto JSON views.
func NewProductListResponse(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = NewProductResponse(&products[i])
	}
	return out
}
