package gql

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lectura de argumentos ya coercionados por graphql-go. Un argumento ausente o null
// devuelve el valor cero (o nil), que el filtro interpreta como "sin restricción".

func argString(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func argBool(args map[string]interface{}, name string) bool {
	b, _ := args[name].(bool)
	return b
}

func argInt(args map[string]interface{}, name string) *int {
	if v, ok := args[name].(int); ok {
		return &v
	}
	return nil
}

func argDecimal(args map[string]interface{}, name string) *decimal.Decimal {
	if v, ok := args[name].(decimal.Decimal); ok {
		return &v
	}
	return nil
}

func argTime(args map[string]interface{}, name string) *time.Time {
	switch v := args[name].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	}
	return nil
}

func argStrings(args map[string]interface{}, name string) []string {
	raw, _ := args[name].([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argObject(args map[string]interface{}, name string) map[string]interface{} {
	m, _ := args[name].(map[string]interface{})
	return m
}
