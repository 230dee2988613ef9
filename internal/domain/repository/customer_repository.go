package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste el cliente. Un email repetido devuelve un ConflictError.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve nil, nil si no existe (o el id no es válido).
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// ExistsByEmail coincidencia exacta.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f filter.CustomerFilter) ([]*entity.Customer, error)
	Count(ctx context.Context) (int, error)

	// DeleteInactiveSince borra (en cascada) los clientes sin pedidos con order_date >= cutoff.
	// Devuelve cuántos se eliminaron.
	DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int, error)
}
