package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrOrderWithoutProducts una orden necesita al menos un producto.
var ErrOrderWithoutProducts = errors.New("entity: orden sin productos")

// Order representa un pedido de un cliente con uno o más productos.
// El total es derivado: se calcula una sola vez al construir la orden y no tiene setter.
type Order struct {
	ID         string
	CustomerID string
	Customer   *Customer // hidratado por el repositorio
	Products   []Product // conjunto sin duplicados, nunca vacío
	OrderDate  time.Time
	CreatedAt  time.Time

	totalAmount decimal.Decimal
}

// NewOrder construye una orden nueva. Los productos repetidos (mismo ID) se asocian una sola vez
// y el total es la suma de los precios vigentes de los productos asociados.
// Si orderDate es cero se usa now.
func NewOrder(id string, customer Customer, products []Product, orderDate, now time.Time) (*Order, error) {
	unique := dedupeProducts(products)
	if len(unique) == 0 {
		return nil, ErrOrderWithoutProducts
	}
	if orderDate.IsZero() {
		orderDate = now
	}
	c := customer
	return &Order{
		ID:          id,
		CustomerID:  customer.ID,
		Customer:    &c,
		Products:    unique,
		OrderDate:   orderDate,
		CreatedAt:   now,
		totalAmount: sumPrices(unique),
	}, nil
}

// HydrateOrder reconstruye una orden persistida con el total almacenado.
// Solo para adaptadores de persistencia.
func HydrateOrder(id, customerID string, totalAmount decimal.Decimal, orderDate, createdAt time.Time) *Order {
	return &Order{
		ID:          id,
		CustomerID:  customerID,
		OrderDate:   orderDate,
		CreatedAt:   createdAt,
		totalAmount: totalAmount,
	}
}

// TotalAmount total de la orden calculado en su creación.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// HasProduct indica si la orden incluye el producto con ese ID.
func (o *Order) HasProduct(productID string) bool {
	for _, p := range o.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// ProductIDs IDs de los productos asociados, en el orden de asociación.
func (o *Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

func dedupeProducts(products []Product) []Product {
	seen := make(map[string]struct{}, len(products))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func sumPrices(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
