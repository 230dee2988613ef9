package filter

import (
	"slices"
	"strings"

	"github.com/jhoicas/crm-api/internal/domain"
)

// SortField campo ordenable: columna SQL y comparador en memoria.
// Las columnas de texto llevan COLLATE "C" para que PostgreSQL ordene por bytes,
// igual que strings.Compare.
type SortField[T any] struct {
	Column  string
	Compare func(a, b T) int
}

type sortKey[T any] struct {
	field SortField[T]
	desc  bool
}

// Ordering criterio de orden ya validado. Nil = orden natural (inserción).
type Ordering[T any] struct {
	keys []sortKey[T]
}

// ParseOrdering interpreta "campo", "-campo" o una lista separada por comas ("name,-price").
// Un campo fuera de fields es un error de validación.
func ParseOrdering[T any](raw string, fields map[string]SortField[T]) (*Ordering[T], error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var keys []sortKey[T]
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		desc := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(name, "-")
		f, ok := fields[name]
		if !ok {
			return nil, domain.NewValidationError("Invalid orderBy field: %s", name)
		}
		keys = append(keys, sortKey[T]{field: f, desc: desc})
	}
	return &Ordering[T]{keys: keys}, nil
}

// SQL cláusula ORDER BY; natural se agrega como desempate (y es el orden completo si o es nil).
func (o *Ordering[T]) SQL(natural string) string {
	if o == nil || len(o.keys) == 0 {
		return "ORDER BY " + natural
	}
	parts := make([]string, 0, len(o.keys)+1)
	for _, k := range o.keys {
		dir := "ASC"
		if k.desc {
			dir = "DESC"
		}
		parts = append(parts, k.field.Column+" "+dir)
	}
	parts = append(parts, natural)
	return "ORDER BY " + strings.Join(parts, ", ")
}

// Sort devuelve una copia ordenada de items (orden estable). Con o nil conserva el orden recibido.
func Sort[T any](items []T, o *Ordering[T]) []T {
	out := slices.Clone(items)
	if o == nil || len(o.keys) == 0 {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range o.keys {
			c := k.field.Compare(a, b)
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

// Select aplica cláusulas y orden sobre una colección en memoria sin modificarla.
func Select[T any](items []T, clauses []Clause[T], o *Ordering[T]) []T {
	return Sort(slices.Collect(Apply(items, clauses)), o)
}
