// Package memory implementa los puertos de persistencia sobre estructuras en memoria.
// Se usa en tests y con STORE_DRIVER=memory; no persiste entre reinicios.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*Store)(nil)

// orderRow fila de orders más sus asociaciones con productos.
type orderRow struct {
	id          string
	customerID  string
	totalAmount decimal.Decimal
	orderDate   time.Time
	createdAt   time.Time
	productIDs  []string
}

// state contenido completo de la base. Los slices conservan el orden de inserción.
type state struct {
	customers []entity.Customer
	products  []entity.Product
	orders    []orderRow
}

func (s *state) clone() *state {
	out := &state{
		customers: slices.Clone(s.customers),
		products:  slices.Clone(s.products),
		orders:    make([]orderRow, len(s.orders)),
	}
	for i, o := range s.orders {
		o.productIDs = slices.Clone(o.productIDs)
		out.orders[i] = o
	}
	return out
}

// access acceso al estado: confirmado (autocommit) o el de una transacción en curso.
type access interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

// Store base en memoria. Los lectores solo ven estado confirmado: cada escritura trabaja
// sobre una copia que se publica al confirmar.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea una base vacía.
func NewStore() *Store {
	return &Store{st: &state{}}
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.st.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.st = work
	return nil
}

// Customers repositorio de clientes en modo autocommit.
func (s *Store) Customers() repository.CustomerRepository { return &customerRepo{a: s} }

// Products repositorio de productos en modo autocommit.
func (s *Store) Products() repository.ProductRepository { return &productRepo{a: s} }

// Orders repositorio de pedidos en modo autocommit.
func (s *Store) Orders() repository.OrderRepository { return &orderRepo{a: s} }

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txAccess{st: s.st.clone()}
	if err := fn(&customerRepo{a: tx}, &productRepo{a: tx}, &orderRepo{a: tx}); err != nil {
		return err
	}
	s.st = tx.st
	return nil
}

// RunBatch cada ítem trabaja sobre su propia copia (savepoint); los errores de dominio descartan
// solo esa copia. El resultado acumulado se publica al final.
func (s *Store) RunBatch(ctx context.Context, n int, fn func(i int, customerRepo repository.CustomerRepository) error) ([]error, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	itemErrs := make([]error, n)
	for i := 0; i < n; i++ {
		sp := &txAccess{st: work.clone()}
		err := fn(i, &customerRepo{a: sp})
		if err == nil {
			work = sp.st
			continue
		}
		var derr *domain.Error
		if !errors.As(err, &derr) {
			return nil, err
		}
		itemErrs[i] = err
	}
	s.st = work
	return itemErrs, nil
}

// txAccess estado privado de una transacción; el Store mantiene el lock de escritura.
type txAccess struct {
	st *state
}

func (t *txAccess) read(fn func(st *state) error) error  { return fn(t.st) }
func (t *txAccess) write(fn func(st *state) error) error { return fn(t.st) }
