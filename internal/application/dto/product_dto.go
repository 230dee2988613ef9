package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock por defecto 0.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	LowStock  bool            `json:"lowStock"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateProductPayload resultado de createProduct.
type CreateProductPayload struct {
	Product *ProductResponse `json:"product"`
	Message string           `json:"message"`
}
