package filter

import (
	"strings"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerFilter opciones de filtrado de clientes. Strings vacíos y punteros nil no restringen.
type CustomerFilter struct {
	Name         string
	Email        string
	PhonePattern string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
	OrderBy      string
}

// CustomerSortFields campos válidos para orderBy (alias de tabla "c").
var CustomerSortFields = map[string]SortField[entity.Customer]{
	"name": {Column: `c.name COLLATE "C"`, Compare: func(a, b entity.Customer) int {
		return strings.Compare(a.Name, b.Name)
	}},
	"email": {Column: `c.email COLLATE "C"`, Compare: func(a, b entity.Customer) int {
		return strings.Compare(a.Email, b.Email)
	}},
	"createdAt": {Column: "c.created_at", Compare: func(a, b entity.Customer) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	}},
}

// CustomerNaturalOrder orden de inserción.
const CustomerNaturalOrder = "c.created_at, c.id"

// Clauses una cláusula por opción presente.
func (f CustomerFilter) Clauses() []Clause[entity.Customer] {
	var out []Clause[entity.Customer]
	if f.Name != "" {
		out = append(out, ContainsFold("c.name", f.Name, func(c entity.Customer) string { return c.Name }))
	}
	if f.Email != "" {
		out = append(out, ContainsFold("c.email", f.Email, func(c entity.Customer) string { return c.Email }))
	}
	if f.PhonePattern != "" {
		out = append(out, HasPrefix("c.phone", f.PhonePattern, func(c entity.Customer) string { return c.Phone }))
	}
	if f.CreatedAtGte != nil {
		out = append(out, AtLeast("c.created_at", *f.CreatedAtGte, customerCreatedAt, time.Time.Compare))
	}
	if f.CreatedAtLte != nil {
		out = append(out, AtMost("c.created_at", *f.CreatedAtLte, customerCreatedAt, time.Time.Compare))
	}
	return out
}

// Ordering valida OrderBy.
func (f CustomerFilter) Ordering() (*Ordering[entity.Customer], error) {
	return ParseOrdering(f.OrderBy, CustomerSortFields)
}

func customerCreatedAt(c entity.Customer) time.Time { return c.CreatedAt }
