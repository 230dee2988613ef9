package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TxRunner ejecuta funciones dentro de una transacción, pasando repositorios atados a ella.
type TxRunner interface {
	// Run todo o nada: si fn devuelve error no se persiste nada.
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error

	// RunBatch ejecuta fn(i) para i en [0, n) dentro de una sola transacción, cada ítem en su
	// propio savepoint. Un *domain.Error revierte solo ese ítem y queda en itemErrs[i]; cualquier
	// otro error aborta el lote completo. Los ítems exitosos se confirman juntos al final.
	RunBatch(ctx context.Context, n int, fn func(i int, customerRepo repository.CustomerRepository) error) (itemErrs []error, err error)
}
