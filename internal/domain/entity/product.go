package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold por debajo de este stock un producto se considera con stock bajo.
const LowStockThreshold = 10

// Product representa un producto del catálogo.
// Price siempre > 0 y Stock >= 0 (validados en el caso de uso y con CHECK en la tabla).
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precisión monetaria, 2 decimales
	Stock     int
	CreatedAt time.Time
}

// IsLowStock indica si el stock está por debajo del umbral.
func (p Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
