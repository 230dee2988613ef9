package gql

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// HelloMessage respuesta del campo hello (lo consulta el heartbeat).
const HelloMessage = "Hello, GraphQL!"

// SystemModule campos de diagnóstico.
type SystemModule struct{}

// NewSystemModule construye el módulo.
func NewSystemModule() *SystemModule { return &SystemModule{} }

func (m *SystemModule) Name() string { return "system" }

func (m *SystemModule) Queries(*Types) graphql.Fields {
	return graphql.Fields{
		"hello": &graphql.Field{
			Type: graphql.String,
			Resolve: func(graphql.ResolveParams) (interface{}, error) {
				return HelloMessage, nil
			},
		},
	}
}

func (m *SystemModule) Mutations(*Types) graphql.Fields {
	payload := graphql.NewObject(graphql.ObjectConfig{
		Name: "SayHelloPayload",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.String},
		},
	})
	return graphql.Fields{
		"sayHello": &graphql.Field{
			Type: payload,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return map[string]interface{}{
					"message": fmt.Sprintf("Hello, %s!", argString(p.Args, "name")),
				}, nil
			},
		},
	}
}
