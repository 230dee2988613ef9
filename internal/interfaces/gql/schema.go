// Package gql expone los casos de uso del CRM como schema GraphQL (graphql-go).
//
// Query y Mutation se componen registrando módulos independientes (system, customers,
// products, orders, stats) en una única tabla de campos; un nombre repetido es un error
// de arranque.
package gql

import (
	"fmt"
	"sort"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// Module aporta campos raíz a Query y Mutation.
type Module interface {
	Name() string
	Queries(t *Types) graphql.Fields
	Mutations(t *Types) graphql.Fields
}

// NewSchema compone los módulos en un schema.
func NewSchema(modules ...Module) (graphql.Schema, error) {
	t := NewTypes()
	query := graphql.Fields{}
	mutation := graphql.Fields{}
	owner := map[string]string{}

	for _, m := range modules {
		if err := register(query, owner, "Query", m.Name(), m.Queries(t)); err != nil {
			return graphql.Schema{}, err
		}
		if err := register(mutation, owner, "Mutation", m.Name(), m.Mutations(t)); err != nil {
			return graphql.Schema{}, err
		}
	}
	if len(query) == 0 {
		return graphql.Schema{}, fmt.Errorf("gql: ningún módulo aporta campos a Query")
	}

	cfg := graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: query}),
	}
	if len(mutation) > 0 {
		cfg.Mutation = graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutation})
	}
	schema, err := graphql.NewSchema(cfg)
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("gql: construir schema: %w", err)
	}
	return schema, nil
}

func register(dst graphql.Fields, owner map[string]string, root, module string, fields graphql.Fields) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := root + "." + name
		if prev, ok := owner[key]; ok {
			return fmt.Errorf("gql: campo %s duplicado (módulos %q y %q)", key, prev, module)
		}
		owner[key] = module
		dst[name] = fields[name]
	}
	return nil
}

// Deps casos de uso que consumen los módulos estándar.
type Deps struct {
	Customers *usecase.CustomerUseCase
	Products  *usecase.ProductUseCase
	Orders    *usecase.OrderUseCase
}

// DefaultModules módulos del CRM en orden de registro.
func DefaultModules(deps Deps, log zerolog.Logger) []Module {
	return []Module{
		NewSystemModule(),
		NewCustomerModule(deps.Customers, log),
		NewProductModule(deps.Products, log),
		NewOrderModule(deps.Orders, log),
		NewStatsModule(deps.Customers, deps.Orders, log),
	}
}
