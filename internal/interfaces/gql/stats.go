package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// StatsModule agregados totalCustomers, totalOrders y totalRevenue (los usa el job de reporte).
type StatsModule struct {
	customers *usecase.CustomerUseCase
	orders    *usecase.OrderUseCase
	log       zerolog.Logger
}

// NewStatsModule construye el módulo.
func NewStatsModule(customers *usecase.CustomerUseCase, orders *usecase.OrderUseCase, log zerolog.Logger) *StatsModule {
	return &StatsModule{customers: customers, orders: orders, log: log}
}

func (m *StatsModule) Name() string { return "stats" }

func (m *StatsModule) Queries(*Types) graphql.Fields {
	return graphql.Fields{
		"totalCustomers": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				n, err := m.customers.Count(p.Context)
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return n, nil
			},
		},
		"totalOrders": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				n, err := m.orders.Count(p.Context)
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return n, nil
			},
		},
		"totalRevenue": &graphql.Field{
			Type: graphql.NewNonNull(Decimal),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				sum, err := m.orders.SumRevenue(p.Context)
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return sum, nil
			},
		},
	}
}

func (m *StatsModule) Mutations(*Types) graphql.Fields { return nil }
