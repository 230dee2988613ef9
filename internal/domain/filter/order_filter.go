package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// OrderFilter opciones de filtrado de pedidos.
// CustomerName, ProductName y ProductID filtran por relaciones: el pedido coincide si su
// cliente (o alguno de sus productos) cumple la condición.
type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   string
	ProductName    string
	ProductID      string
	OrderBy        string
}

// OrderSortFields campos válidos para orderBy. La consulta de pedidos usa alias "o"
// y une customers como "c".
var OrderSortFields = map[string]SortField[*entity.Order]{
	"orderDate": {Column: "o.order_date", Compare: func(a, b *entity.Order) int {
		return a.OrderDate.Compare(b.OrderDate)
	}},
	"totalAmount": {Column: "o.total_amount", Compare: func(a, b *entity.Order) int {
		return a.TotalAmount().Cmp(b.TotalAmount())
	}},
	"customerName": {Column: `c.name COLLATE "C"`, Compare: func(a, b *entity.Order) int {
		return strings.Compare(orderCustomerName(a), orderCustomerName(b))
	}},
}

// OrderNaturalOrder orden de inserción.
const OrderNaturalOrder = "o.created_at, o.id"

// Clauses una cláusula por opción presente.
// Los predicados en memoria esperan pedidos con Customer y Products hidratados.
func (f OrderFilter) Clauses() []Clause[*entity.Order] {
	var out []Clause[*entity.Order]
	if f.TotalAmountGte != nil {
		out = append(out, AtLeast("o.total_amount", *f.TotalAmountGte, orderTotal, decimal.Decimal.Cmp))
	}
	if f.TotalAmountLte != nil {
		out = append(out, AtMost("o.total_amount", *f.TotalAmountLte, orderTotal, decimal.Decimal.Cmp))
	}
	if f.OrderDateGte != nil {
		out = append(out, AtLeast("o.order_date", *f.OrderDateGte, orderDate, time.Time.Compare))
	}
	if f.OrderDateLte != nil {
		out = append(out, AtMost("o.order_date", *f.OrderDateLte, orderDate, time.Time.Compare))
	}
	if f.CustomerName != "" {
		out = append(out, customerNameClause(f.CustomerName))
	}
	if f.ProductName != "" {
		out = append(out, productNameClause(f.ProductName))
	}
	if f.ProductID != "" {
		out = append(out, productIDClause(f.ProductID))
	}
	return out
}

// Ordering valida OrderBy.
func (f OrderFilter) Ordering() (*Ordering[*entity.Order], error) {
	return ParseOrdering(f.OrderBy, OrderSortFields)
}

func customerNameClause(name string) Clause[*entity.Order] {
	inner := ContainsFold("fc.name", name, func(o *entity.Order) string { return orderCustomerName(o) })
	return NewClause(
		func(b *Builder) string {
			return fmt.Sprintf("EXISTS (SELECT 1 FROM customers fc WHERE fc.id = o.customer_id AND %s)", inner.SQL(b))
		},
		inner.Match,
	)
}

func productNameClause(name string) Clause[*entity.Order] {
	inner := ContainsFold("fp.name", name, func(p entity.Product) string { return p.Name })
	return NewClause(
		func(b *Builder) string {
			return fmt.Sprintf("EXISTS (SELECT 1 FROM order_products fop JOIN products fp ON fp.id = fop.product_id "+
				"WHERE fop.order_id = o.id AND %s)", inner.SQL(b))
		},
		func(o *entity.Order) bool {
			for _, p := range o.Products {
				if inner.Match(p) {
					return true
				}
			}
			return false
		},
	)
}

func productIDClause(id string) Clause[*entity.Order] {
	// product_id es uuid; un id mal formado no puede coincidir con nada.
	if _, err := uuid.Parse(id); err != nil {
		return Never[*entity.Order]()
	}
	return NewClause(
		func(b *Builder) string {
			return "EXISTS (SELECT 1 FROM order_products fop WHERE fop.order_id = o.id AND fop.product_id = " + b.Arg(id) + ")"
		},
		func(o *entity.Order) bool { return o.HasProduct(id) },
	)
}

func orderCustomerName(o *entity.Order) string {
	if o.Customer == nil {
		return ""
	}
	return o.Customer.Name
}

func orderTotal(o *entity.Order) decimal.Decimal { return o.TotalAmount() }
func orderDate(o *entity.Order) time.Time        { return o.OrderDate }
