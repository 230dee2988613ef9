package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

// MsgOrderCreated mensaje de createOrder.
const MsgOrderCreated = "Order created successfully"

// OrderModule order, allOrders y createOrder.
type OrderModule struct {
	uc  *usecase.OrderUseCase
	log zerolog.Logger
}

// NewOrderModule construye el módulo.
func NewOrderModule(uc *usecase.OrderUseCase, log zerolog.Logger) *OrderModule {
	return &OrderModule{uc: uc, log: log}
}

func (m *OrderModule) Name() string { return "orders" }

func (m *OrderModule) Queries(t *Types) graphql.Fields {
	return graphql.Fields{
		"order": &graphql.Field{
			Type: t.Order,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				o, err := m.uc.GetByID(p.Context, argString(p.Args, "id"))
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return o, nil
			},
		},
		"allOrders": &graphql.Field{
			Type: listOf(t.Order),
			Args: graphql.FieldConfigArgument{
				"totalAmountGte": &graphql.ArgumentConfig{Type: Decimal},
				"totalAmountLte": &graphql.ArgumentConfig{Type: Decimal},
				"orderDateGte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
				"orderDateLte":   &graphql.ArgumentConfig{Type: graphql.DateTime},
				"customerName":   &graphql.ArgumentConfig{Type: graphql.String},
				"productName":    &graphql.ArgumentConfig{Type: graphql.String},
				"productId":      &graphql.ArgumentConfig{Type: graphql.ID},
				"orderBy":        &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				list, err := m.uc.List(p.Context, filter.OrderFilter{
					TotalAmountGte: argDecimal(p.Args, "totalAmountGte"),
					TotalAmountLte: argDecimal(p.Args, "totalAmountLte"),
					OrderDateGte:   argTime(p.Args, "orderDateGte"),
					OrderDateLte:   argTime(p.Args, "orderDateLte"),
					CustomerName:   argString(p.Args, "customerName"),
					ProductName:    argString(p.Args, "productName"),
					ProductID:      argString(p.Args, "productId"),
					OrderBy:        argString(p.Args, "orderBy"),
				})
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return list, nil
			},
		},
	}
}

func (m *OrderModule) Mutations(t *Types) graphql.Fields {
	input := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
			"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})
	payload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order":   &graphql.Field{Type: t.Order},
			"message": &graphql.Field{Type: graphql.String},
		},
	})

	return graphql.Fields{
		"createOrder": &graphql.Field{
			Type: payload,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in := argObject(p.Args, "input")
				o, err := m.uc.Create(p.Context, dto.CreateOrderRequest{
					CustomerID: argString(in, "customerId"),
					ProductIDs: argStrings(in, "productIds"),
					OrderDate:  argTime(in, "orderDate"),
				})
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return &dto.CreateOrderPayload{Order: o, Message: MsgOrderCreated}, nil
			},
		},
	}
}
