package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

// OrderRepository define el puerto de persistencia para Order.
// Las lecturas devuelven pedidos con Customer y Products hidratados.
type OrderRepository interface {
	// Create persiste la cabecera y sus asociaciones con productos.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, f filter.OrderFilter) ([]*entity.Order, error)
	Count(ctx context.Context) (int, error)
	// SumRevenue suma de total_amount de todos los pedidos (cero si no hay).
	SumRevenue(ctx context.Context) (decimal.Decimal, error)
	// Recent últimos pedidos por fecha de pedido, más recientes primero.
	Recent(ctx context.Context, limit int) ([]*entity.Order, error)
}
