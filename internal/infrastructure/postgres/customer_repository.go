package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `c.id, c.name, c.email, COALESCE(c.phone, ''), c.created_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Phone vacío se guarda como NULL.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError(domain.MsgEmailExists)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + customerColumns + ` FROM customers c WHERE c.id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ExistsByEmail coincidencia exacta (la constraint única distingue mayúsculas).
func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customer exists by email: %w", err)
	}
	return exists, nil
}

// List filtra y ordena en la base (predicate pushdown).
func (r *CustomerRepo) List(ctx context.Context, f filter.CustomerFilter) ([]*entity.Customer, error) {
	ordering, err := f.Ordering()
	if err != nil {
		return nil, err
	}
	b := filter.NewBuilder()
	query := fmt.Sprintf(`SELECT %s FROM customers c %s %s`,
		customerColumns, filter.Where(b, f.Clauses()), ordering.SQL(filter.CustomerNaturalOrder))

	rows, err := r.q.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// DeleteInactiveSince borra los clientes sin pedidos desde cutoff; orders y order_products
// caen por ON DELETE CASCADE.
func (r *CustomerRepo) DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
		DELETE FROM customers c
		WHERE NOT EXISTS (
			SELECT 1 FROM orders o WHERE o.customer_id = c.id AND o.order_date >= $1
		)`
	tag, err := r.q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete inactive customers: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
