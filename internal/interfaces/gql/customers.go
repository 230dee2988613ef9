package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/filter"
)

// MsgCustomerCreated mensaje de createCustomer.
const MsgCustomerCreated = "Customer created successfully"

// CustomerModule customer, allCustomers, createCustomer y bulkCreateCustomers.
type CustomerModule struct {
	uc  *usecase.CustomerUseCase
	log zerolog.Logger
}

// NewCustomerModule construye el módulo.
func NewCustomerModule(uc *usecase.CustomerUseCase, log zerolog.Logger) *CustomerModule {
	return &CustomerModule{uc: uc, log: log}
}

func (m *CustomerModule) Name() string { return "customers" }

func (m *CustomerModule) Queries(t *Types) graphql.Fields {
	return graphql.Fields{
		"customer": &graphql.Field{
			Type: t.Customer,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				c, err := m.uc.GetByID(p.Context, argString(p.Args, "id"))
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return c, nil
			},
		},
		"allCustomers": &graphql.Field{
			Type: listOf(t.Customer),
			Args: graphql.FieldConfigArgument{
				"name":         &graphql.ArgumentConfig{Type: graphql.String},
				"email":        &graphql.ArgumentConfig{Type: graphql.String},
				"phonePattern": &graphql.ArgumentConfig{Type: graphql.String},
				"createdAtGte": &graphql.ArgumentConfig{Type: graphql.DateTime},
				"createdAtLte": &graphql.ArgumentConfig{Type: graphql.DateTime},
				"orderBy":      &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				list, err := m.uc.List(p.Context, filter.CustomerFilter{
					Name:         argString(p.Args, "name"),
					Email:        argString(p.Args, "email"),
					PhonePattern: argString(p.Args, "phonePattern"),
					CreatedAtGte: argTime(p.Args, "createdAtGte"),
					CreatedAtLte: argTime(p.Args, "createdAtLte"),
					OrderBy:      argString(p.Args, "orderBy"),
				})
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return list, nil
			},
		},
	}
}

func (m *CustomerModule) Mutations(t *Types) graphql.Fields {
	input := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
	createPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{Type: t.Customer},
			"message":  &graphql.Field{Type: graphql.String},
		},
	})
	bulkPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customers": &graphql.Field{Type: listOf(t.Customer)},
			"errors":    &graphql.Field{Type: listOf(graphql.String)},
		},
	})

	return graphql.Fields{
		"createCustomer": &graphql.Field{
			Type: createPayload,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				c, err := m.uc.Create(p.Context, customerRequest(argObject(p.Args, "input")))
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return &dto.CreateCustomerPayload{Customer: c, Message: MsgCustomerCreated}, nil
			},
		},
		"bulkCreateCustomers": &graphql.Field{
			Type: bulkPayload,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(input)))},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				raw, _ := p.Args["input"].([]interface{})
				items := make([]dto.CreateCustomerRequest, 0, len(raw))
				for _, v := range raw {
					obj, _ := v.(map[string]interface{})
					items = append(items, customerRequest(obj))
				}
				out, err := m.uc.BulkCreate(p.Context, items)
				if err != nil {
					return nil, resolveError(m.log, p, err)
				}
				return out, nil
			},
		},
	}
}

func customerRequest(in map[string]interface{}) dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:  argString(in, "name"),
		Email: argString(in, "email"),
		Phone: argString(in, "phone"),
	}
}
