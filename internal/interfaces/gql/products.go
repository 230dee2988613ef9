package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

// MsgProductCreated mensaje de createProduct.
const MsgProductCreated = "Product created successfully"

// ProductModule product, allProducts y createProduct.
type ProductModule struct {
	uc  *usecase.ProductUseCase
	log zerolog.Logger
}

// NewProductModule construye el módulo.
func NewProductModule(uc *usecase.ProductUseCase, log zerolog.Logger) *ProductModule {
	return &ProductModule{uc: uc, log: log}
}

func (m *ProductModule) Name() string { return "products" }

func (m *ProductModule) Queries(t *Types) graphql.Fields {
	return graphql.Fields{
		"product": &graphql.Field{
			Type: t.Product,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				prod, err := m.uc.GetByID(p.Context, argString(p.Args, "id"))
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return prod, nil
			},
		},
		"allProducts": &graphql.Field{
			Type: listOf(t.Product),
			Args: graphql.FieldConfigArgument{
				"name":     &graphql.ArgumentConfig{Type: graphql.String},
				"priceGte": &graphql.ArgumentConfig{Type: Decimal},
				"priceLte": &graphql.ArgumentConfig{Type: Decimal},
				"stockGte": &graphql.ArgumentConfig{Type: graphql.Int},
				"stockLte": &graphql.ArgumentConfig{Type: graphql.Int},
				"lowStock": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"orderBy":  &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				list, err := m.uc.List(p.Context, filter.ProductFilter{
					Name:     argString(p.Args, "name"),
					PriceGte: argDecimal(p.Args, "priceGte"),
					PriceLte: argDecimal(p.Args, "priceLte"),
					StockGte: argInt(p.Args, "stockGte"),
					StockLte: argInt(p.Args, "stockLte"),
					LowStock: argBool(p.Args, "lowStock"),
					OrderBy:  argString(p.Args, "orderBy"),
				})
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return list, nil
			},
		},
	}
}

func (m *ProductModule) Mutations(t *Types) graphql.Fields {
	input := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: 0},
		},
	})
	payload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{Type: t.Product},
			"message": &graphql.Field{Type: graphql.String},
		},
	})

	return graphql.Fields{
		"createProduct": &graphql.Field{
			Type: payload,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := argObject(p.Args, "input")
				req := dto.CreateProductRequest{Name: argString(in, "name")}
				if price := argDecimal(in, "price"); price != nil {
					req.Price = *price
				} else {
					req.Price = decimal.Zero
				}
				if stock := argInt(in, "stock"); stock != nil {
					req.Stock = *stock
				}
				prod, err := m.uc.Create(p.Context, req)
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return &dto.CreateProductPayload{Product: prod, Message: MsgProductCreated}, nil
			},
		},
	}
}
