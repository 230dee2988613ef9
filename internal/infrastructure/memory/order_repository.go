package memory

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

type orderRepo struct {
	a access
}

// Create exige que el cliente y los productos existan (equivalente a las FK).
func (r *orderRepo) Create(_ context.Context, o *entity.Order) error {
	return r.a.write(func(st *state) error {
		if st.customer(o.CustomerID) == nil {
			return domain.NewIntegrityError(domain.MsgCustomerNotFound)
		}
		ids := o.ProductIDs()
		if len(ids) == 0 {
			return domain.NewIntegrityError(domain.MsgEmptyProducts)
		}
		for _, id := range ids {
			if st.product(id) == nil {
				return domain.NewIntegrityError("%s: %s", domain.MsgProductsNotFound, id)
			}
		}
		st.orders = append(st.orders, orderRow{
			id:          o.ID,
			customerID:  o.CustomerID,
			totalAmount: o.TotalAmount(),
			orderDate:   o.OrderDate,
			createdAt:   o.CreatedAt,
			productIDs:  ids,
		})
		return nil
	})
}

func (r *orderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	var out *entity.Order
	err := r.a.read(func(st *state) error {
		for _, row := range st.orders {
			if row.id == id {
				out = st.hydrate(row)
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *orderRepo) List(_ context.Context, f filter.OrderFilter) ([]*entity.Order, error) {
	ordering, err := f.Ordering()
	if err != nil {
		return nil, err
	}
	var out []*entity.Order
	err = r.a.read(func(st *state) error {
		out = filter.Select(st.hydrateAll(), f.Clauses(), ordering)
		return nil
	})
	return out, err
}

func (r *orderRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.a.read(func(st *state) error {
		n = len(st.orders)
		return nil
	})
	return n, err
}

func (r *orderRepo) SumRevenue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.a.read(func(st *state) error {
		for _, o := range st.orders {
			total = total.Add(o.totalAmount)
		}
		return nil
	})
	return total, err
}

func (r *orderRepo) Recent(_ context.Context, limit int) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.a.read(func(st *state) error {
		all := st.hydrateAll()
		slices.SortStableFunc(all, func(a, b *entity.Order) int {
			if c := b.OrderDate.Compare(a.OrderDate); c != 0 {
				return c
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		})
		if limit > 0 && len(all) > limit {
			all = all[:limit]
		}
		out = all
		return nil
	})
	return out, err
}

func (st *state) hydrateAll() []*entity.Order {
	out := make([]*entity.Order, 0, len(st.orders))
	for _, row := range st.orders {
		out = append(out, st.hydrate(row))
	}
	return out
}

func (st *state) hydrate(row orderRow) *entity.Order {
	o := entity.HydrateOrder(row.id, row.customerID, row.totalAmount, row.orderDate, row.createdAt)
	o.Customer = st.customer(row.customerID)
	o.Products = make([]entity.Product, 0, len(row.productIDs))
	for _, id := range row.productIDs {
		if p := st.product(id); p != nil {
			o.Products = append(o.Products, *p)
		}
	}
	return o
}
