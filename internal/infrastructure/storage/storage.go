// Package storage arma los repositorios según STORE_DRIVER (postgres o memory).
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/pkg/config"
)

// Backend repositorios y runner transaccional de un mismo almacenamiento.
type Backend struct {
	Driver    string
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
	Orders    repository.OrderRepository
	Tx        usecase.TxRunner
	close     func()
}

// Close libera el pool (no-op en memoria).
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open conecta el backend configurado.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		s := memory.NewStore()
		return &Backend{
			Driver:    cfg.Store.Driver,
			Customers: s.Customers(),
			Products:  s.Products(),
			Orders:    s.Orders(),
			Tx:        s,
		}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		return &Backend{
			Driver:    cfg.Store.Driver,
			Customers: postgres.NewCustomerRepository(pool),
			Products:  postgres.NewProductRepository(pool),
			Orders:    postgres.NewOrderRepository(pool),
			Tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Store.Driver)
	}
}
