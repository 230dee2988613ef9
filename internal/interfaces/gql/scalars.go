package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/validation"
)

// maxDecimalLiteral longitud máxima del texto de un Decimal de entrada.
const maxDecimalLiteral = 64

// Decimal montos con dos decimales. Se serializa como string ("149.99") para no perder
// precisión; acepta literales Int, Float o String. Los valores que no caben en
// NUMERIC(12,2) se rechazan como argumento inválido.
var Decimal = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Monto decimal fijo a 2 cifras, serializado como string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.StringFixed(2)
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.StringFixed(2)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			return parseDecimal(v)
		case float64:
			return bounded(decimal.NewFromFloat(v))
		case float32:
			return bounded(decimal.NewFromFloat32(v))
		case int:
			return bounded(decimal.NewFromInt(int64(v)))
		case int64:
			return bounded(decimal.NewFromInt(v))
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDecimal(v.Value)
		case *ast.FloatValue:
			return parseDecimal(v.Value)
		case *ast.IntValue:
			return parseDecimal(v.Value)
		}
		return nil
	},
})

// parseDecimal nil si no es un número o está fuera de rango (graphql-go lo reporta
// como valor inválido).
func parseDecimal(s string) interface{} {
	if len(s) > maxDecimalLiteral {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return bounded(d)
}

func bounded(d decimal.Decimal) interface{} {
	if !validation.AmountFits(d) {
		return nil
	}
	return d
}
