package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs devuelve los productos encontrados; los ids inexistentes se omiten.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	List(ctx context.Context, f filter.ProductFilter) ([]*entity.Product, error)
}
