package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada de createOrder. OrderDate nil = momento de creación.
type CreateOrderRequest struct {
	CustomerID string     `json:"customerId" validate:"required"`
	ProductIDs []string   `json:"productIds"`
	OrderDate  *time.Time `json:"orderDate"`
}

// OrderResponse salida de un pedido con su cliente y productos.
type OrderResponse struct {
	ID          string            `json:"id"`
	Customer    *CustomerResponse `json:"customer"`
	Products    []ProductResponse `json:"products"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	OrderDate   time.Time         `json:"orderDate"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// CreateOrderPayload resultado de createOrder.
type CreateOrderPayload struct {
	Order   *OrderResponse `json:"order"`
	Message string         `json:"message"`
}
