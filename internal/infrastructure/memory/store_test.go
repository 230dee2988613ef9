package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var t0 = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func seedCustomer(t *testing.T, s *memory.Store, id, name, email string) entity.Customer {
	t.Helper()
	c := entity.Customer{ID: id, Name: name, Email: email, CreatedAt: t0}
	require.NoError(t, s.Customers().Create(context.Background(), &c))
	return c
}

func seedProduct(t *testing.T, s *memory.Store, id, name, price string) entity.Product {
	t.Helper()
	p := entity.Product{ID: id, Name: name, Price: decimal.RequireFromString(price), CreatedAt: t0}
	require.NoError(t, s.Products().Create(context.Background(), &p))
	return p
}

func seedOrder(t *testing.T, s *memory.Store, id string, c entity.Customer, date time.Time, ps ...entity.Product) {
	t.Helper()
	o, err := entity.NewOrder(id, c, ps, date, date)
	require.NoError(t, err)
	require.NoError(t, s.Orders().Create(context.Background(), o))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerRepo_EmailDuplicadoEsConflicto(t *testing.T) {
	s := memory.NewStore()
	seedCustomer(t, s, "c1", "Alice", "alice@example.com")

	err := s.Customers().Create(context.Background(), &entity.Customer{ID: "c2", Name: "Other", Email: "alice@example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	n, err := s.Customers().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCustomerRepo_GetByIDInexistenteDevuelveNil(t *testing.T) {
	s := memory.NewStore()
	c, err := s.Customers().GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCustomerRepo_ListFiltraYOrdena(t *testing.T) {
	s := memory.NewStore()
	seedCustomer(t, s, "c1", "Alice", "alice@example.com")
	seedCustomer(t, s, "c2", "Bob", "bob@example.com")
	seedCustomer(t, s, "c3", "Carol", "carol@test.org")

	list, err := s.Customers().List(context.Background(), filter.CustomerFilter{Email: "example", OrderBy: "-name"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bob", list[0].Name)
	assert.Equal(t, "Alice", list[1].Name)
}

func TestCustomerRepo_DeleteInactiveSinceBorraEnCascada(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	cutoff := t0.AddDate(-1, 0, 0)

	active := seedCustomer(t, s, "c1", "Active", "active@example.com")
	stale := seedCustomer(t, s, "c2", "Stale", "stale@example.com")
	seedCustomer(t, s, "c3", "Never", "never@example.com")
	p := seedProduct(t, s, "p1", "Laptop", "999.99")

	seedOrder(t, s, "o1", active, t0.AddDate(0, -1, 0), p)
	seedOrder(t, s, "o2", stale, t0.AddDate(-2, 0, 0), p)

	deleted, err := s.Customers().DeleteInactiveSince(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := s.Customers().List(ctx, filter.CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "c1", remaining[0].ID)

	orders, err := s.Orders().List(ctx, filter.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1, "los pedidos del cliente borrado deben eliminarse en cascada")
	assert.Equal(t, "o1", orders[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_HidrataClienteYProductos(t *testing.T) {
	s := memory.NewStore()
	c := seedCustomer(t, s, "c1", "Alice", "alice@example.com")
	p1 := seedProduct(t, s, "p1", "Laptop", "999.99")
	p2 := seedProduct(t, s, "p2", "Phone", "499.99")
	seedOrder(t, s, "o1", c, t0, p1, p2)

	o, err := s.Orders().GetByID(context.Background(), "o1")
	require.NoError(t, err)
	require.NotNil(t, o)
	require.NotNil(t, o.Customer)
	assert.Equal(t, "Alice", o.Customer.Name)
	assert.Equal(t, []string{"p1", "p2"}, o.ProductIDs())
	assert.True(t, decimal.RequireFromString("1499.98").Equal(o.TotalAmount()))
}

func TestOrderRepo_ClienteInexistenteEsIntegridad(t *testing.T) {
	s := memory.NewStore()
	p := seedProduct(t, s, "p1", "Laptop", "999.99")
	o, err := entity.NewOrder("o1", entity.Customer{ID: "ghost"}, []entity.Product{p}, t0, t0)
	require.NoError(t, err)

	err = s.Orders().Create(context.Background(), o)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestOrderRepo_SumRevenueSinPedidosEsCero(t *testing.T) {
	s := memory.NewStore()
	sum, err := s.Orders().SumRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestOrderRepo_RecentMasRecientesPrimero(t *testing.T) {
	s := memory.NewStore()
	c := seedCustomer(t, s, "c1", "Alice", "alice@example.com")
	p := seedProduct(t, s, "p1", "Laptop", "999.99")
	seedOrder(t, s, "old", c, t0.AddDate(0, 0, -3), p)
	seedOrder(t, s, "new", c, t0, p)
	seedOrder(t, s, "mid", c, t0.AddDate(0, 0, -1), p)

	recent, err := s.Orders().Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_ErrorNoPersisteNada(t *testing.T) {
	s := memory.NewStore()
	boom := errors.New("boom")

	err := s.Run(context.Background(), func(
		customers repository.CustomerRepository,
		_ repository.ProductRepository,
		_ repository.OrderRepository,
	) error {
		require.NoError(t, customers.Create(context.Background(), &entity.Customer{ID: "c1", Name: "A", Email: "a@example.com"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Customers().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRun_LecturasDentroDeLaTransaccionVenSusEscrituras(t *testing.T) {
	s := memory.NewStore()
	err := s.Run(context.Background(), func(
		customers repository.CustomerRepository,
		_ repository.ProductRepository,
		_ repository.OrderRepository,
	) error {
		if err := customers.Create(context.Background(), &entity.Customer{ID: "c1", Name: "A", Email: "a@example.com"}); err != nil {
			return err
		}
		exists, err := customers.ExistsByEmail(context.Background(), "a@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
		return nil
	})
	require.NoError(t, err)
}

func TestRunBatch_ErrorDeDominioRevierteSoloElItem(t *testing.T) {
	s := memory.NewStore()
	emails := []string{"a@example.com", "a@example.com", "b@example.com"}

	itemErrs, err := s.RunBatch(context.Background(), len(emails), func(i int, customers repository.CustomerRepository) error {
		return customers.Create(context.Background(), &entity.Customer{ID: emails[i] + string(rune('0'+i)), Name: "X", Email: emails[i]})
	})
	require.NoError(t, err)
	require.Len(t, itemErrs, 3)
	assert.NoError(t, itemErrs[0])
	assert.True(t, errors.Is(itemErrs[1], domain.ErrConflict))
	assert.NoError(t, itemErrs[2])

	n, err := s.Customers().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRunBatch_ErrorDeInfraestructuraAbortaTodo(t *testing.T) {
	s := memory.NewStore()
	boom := errors.New("disk on fire")

	_, err := s.RunBatch(context.Background(), 2, func(i int, customers repository.CustomerRepository) error {
		if i == 1 {
			return boom
		}
		return customers.Create(context.Background(), &entity.Customer{ID: "c1", Name: "A", Email: "a@example.com"})
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Customers().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "un lote abortado no debe dejar escrituras parciales")
}
