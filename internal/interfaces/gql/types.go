package gql

import "github.com/graphql-go/graphql"

// Types objetos compartidos entre módulos. Se construyen una vez por schema.
type Types struct {
	Customer *graphql.Object
	Product  *graphql.Object
	Order    *graphql.Object
}

// NewTypes define Customer, Product y Order. Los resolvers devuelven DTOs y el resolver por
// defecto de graphql-go toma cada campo por nombre o tag json.
func NewTypes() *Types {
	customer := graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	product := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":     &graphql.Field{Type: graphql.NewNonNull(Decimal)},
			"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"lowStock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	order := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"customer":    &graphql.Field{Type: graphql.NewNonNull(customer)},
			"products":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(product)))},
			"totalAmount": &graphql.Field{Type: graphql.NewNonNull(Decimal)},
			"orderDate":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	return &Types{Customer: customer, Product: product, Order: order}
}

// listOf [T!]!
func listOf(t graphql.Type) graphql.Output {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}
