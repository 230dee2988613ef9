package memory

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

type productRepo struct {
	a access
}

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	return r.a.write(func(st *state) error {
		st.products = append(st.products, *p)
		return nil
	})
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.read(func(st *state) error {
		out = st.product(id)
		return nil
	})
	return out, err
}

func (r *productRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.a.read(func(st *state) error {
		for _, id := range ids {
			if p := st.product(id); p != nil {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

func (r *productRepo) List(_ context.Context, f filter.ProductFilter) ([]*entity.Product, error) {
	ordering, err := f.Ordering()
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	err = r.a.read(func(st *state) error {
		for _, p := range filter.Select(st.products, f.Clauses(), ordering) {
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

func (st *state) product(id string) *entity.Product {
	for _, p := range st.products {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
