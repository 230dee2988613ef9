package memory

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

type customerRepo struct {
	a access
}

func (r *customerRepo) Create(_ context.Context, c *entity.Customer) error {
	return r.a.write(func(st *state) error {
		for _, existing := range st.customers {
			if existing.Email == c.Email {
				return domain.NewConflictError(domain.MsgEmailExists)
			}
		}
		st.customers = append(st.customers, *c)
		return nil
	})
}

func (r *customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.a.read(func(st *state) error {
		out = st.customer(id)
		return nil
	})
	return out, err
}

func (r *customerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	var exists bool
	err := r.a.read(func(st *state) error {
		exists = slices.ContainsFunc(st.customers, func(c entity.Customer) bool { return c.Email == email })
		return nil
	})
	return exists, err
}

func (r *customerRepo) List(_ context.Context, f filter.CustomerFilter) ([]*entity.Customer, error) {
	ordering, err := f.Ordering()
	if err != nil {
		return nil, err
	}
	var out []*entity.Customer
	err = r.a.read(func(st *state) error {
		for _, c := range filter.Select(st.customers, f.Clauses(), ordering) {
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *customerRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.a.read(func(st *state) error {
		n = len(st.customers)
		return nil
	})
	return n, err
}

// DeleteInactiveSince borra en cascada clientes sin pedidos desde cutoff.
func (r *customerRepo) DeleteInactiveSince(_ context.Context, cutoff time.Time) (int, error) {
	var deleted int
	err := r.a.write(func(st *state) error {
		active := make(map[string]bool)
		for _, o := range st.orders {
			if !o.orderDate.Before(cutoff) {
				active[o.customerID] = true
			}
		}
		kept := st.customers[:0]
		gone := make(map[string]bool)
		for _, c := range st.customers {
			if active[c.ID] {
				kept = append(kept, c)
				continue
			}
			gone[c.ID] = true
		}
		st.customers = kept
		st.orders = slices.DeleteFunc(st.orders, func(o orderRow) bool { return gone[o.customerID] })
		deleted = len(gone)
		return nil
	})
	return deleted, err
}

func (st *state) customer(id string) *entity.Customer {
	for _, c := range st.customers {
		if c.ID == id {
			return &c
		}
	}
	return nil
}
