package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// orderSelect une customers como "c": lo usa el orden por customerName.
const orderSelect = `
	SELECT o.id, o.customer_id, o.total_amount, o.order_date, o.created_at, ` + customerColumns + `
	FROM orders o
	JOIN customers c ON c.id = o.customer_id`

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y las asociaciones (conservando el orden de los productos).
// Debe ejecutarse dentro de una transacción para que ambas escrituras sean atómicas.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, customer_id, total_amount, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		o.ID, o.CustomerID, o.TotalAmount(), o.OrderDate, o.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewIntegrityError(domain.MsgCustomerNotFound)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	_, err = r.q.Exec(ctx, `
		INSERT INTO order_products (order_id, product_id, position)
		SELECT $1, t.product_id, t.position
		FROM unnest($2::uuid[]) WITH ORDINALITY AS t(product_id, position)`,
		o.ID, o.ProductIDs(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewIntegrityError(domain.MsgProductsNotFound)
		}
		return fmt.Errorf("insert order products: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con cliente y productos.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !validID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadProducts(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// List filtra y ordena en la base; las relaciones se resuelven con EXISTS.
func (r *OrderRepo) List(ctx context.Context, f filter.OrderFilter) ([]*entity.Order, error) {
	ordering, err := f.Ordering()
	if err != nil {
		return nil, err
	}
	b := filter.NewBuilder()
	query := fmt.Sprintf(`%s %s %s`, orderSelect, filter.Where(b, f.Clauses()), ordering.SQL(filter.OrderNaturalOrder))
	return r.query(ctx, query, b.Args()...)
}

// Count total de pedidos.
func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// SumRevenue suma de total_amount; 0 sin pedidos.
func (r *OrderRepo) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders`).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return sum, nil
}

// Recent últimos pedidos por fecha.
func (r *OrderRepo) Recent(ctx context.Context, limit int) ([]*entity.Order, error) {
	return r.query(ctx, orderSelect+` ORDER BY o.order_date DESC, o.created_at DESC LIMIT $1`, limit)
}

func (r *OrderRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	// La conexión debe quedar libre antes de la segunda consulta (dentro de una tx es la misma).
	if err := r.loadProducts(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadProducts hidrata Products de todos los pedidos con una sola consulta.
func (r *OrderRepo) loadProducts(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
		o.Products = []entity.Product{}
	}
	rows, err := r.q.Query(ctx, `
		SELECT op.order_id, `+productColumns+`
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = ANY($1::uuid[])
		ORDER BY op.order_id, op.position`, ids)
	if err != nil {
		return fmt.Errorf("load order products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID string
		var p entity.Product
		if err := rows.Scan(&orderID, &p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return fmt.Errorf("scan order product: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Products = append(o.Products, p)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		id, customerID       string
		total                decimal.Decimal
		orderDate, createdAt time.Time
		c                    entity.Customer
	)
	if err := row.Scan(&id, &customerID, &total, &orderDate, &createdAt,
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	o := entity.HydrateOrder(id, customerID, total, orderDate, createdAt)
	o.Customer = &c
	return o, nil
}
