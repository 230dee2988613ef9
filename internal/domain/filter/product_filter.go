package filter

import (
	"cmp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ProductFilter opciones de filtrado de productos.
// LowStock=true equivale a stock < entity.LowStockThreshold; false no restringe.
type ProductFilter struct {
	Name     string
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
	StockGte *int
	StockLte *int
	LowStock bool
	OrderBy  string
}

// ProductSortFields campos válidos para orderBy (alias de tabla "p").
var ProductSortFields = map[string]SortField[entity.Product]{
	"name": {Column: `p.name COLLATE "C"`, Compare: func(a, b entity.Product) int {
		return strings.Compare(a.Name, b.Name)
	}},
	"price": {Column: "p.price", Compare: func(a, b entity.Product) int {
		return a.Price.Cmp(b.Price)
	}},
	"stock": {Column: "p.stock", Compare: func(a, b entity.Product) int {
		return cmp.Compare(a.Stock, b.Stock)
	}},
}

// ProductNaturalOrder orden de inserción.
const ProductNaturalOrder = "p.created_at, p.id"

// Clauses una cláusula por opción presente.
func (f ProductFilter) Clauses() []Clause[entity.Product] {
	var out []Clause[entity.Product]
	if f.Name != "" {
		out = append(out, ContainsFold("p.name", f.Name, func(p entity.Product) string { return p.Name }))
	}
	if f.PriceGte != nil {
		out = append(out, AtLeast("p.price", *f.PriceGte, productPrice, decimal.Decimal.Cmp))
	}
	if f.PriceLte != nil {
		out = append(out, AtMost("p.price", *f.PriceLte, productPrice, decimal.Decimal.Cmp))
	}
	if f.StockGte != nil {
		out = append(out, AtLeast("p.stock", *f.StockGte, productStock, cmp.Compare[int]))
	}
	if f.StockLte != nil {
		out = append(out, AtMost("p.stock", *f.StockLte, productStock, cmp.Compare[int]))
	}
	if f.LowStock {
		out = append(out, LessThan("p.stock", entity.LowStockThreshold, productStock, cmp.Compare[int]))
	}
	return out
}

// Ordering valida OrderBy.
func (f ProductFilter) Ordering() (*Ordering[entity.Product], error) {
	return ParseOrdering(f.OrderBy, ProductSortFields)
}

func productPrice(p entity.Product) decimal.Decimal { return p.Price }
func productStock(p entity.Product) int             { return p.Stock }
