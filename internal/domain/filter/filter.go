// Package filter traduce parámetros de filtrado con nombre a predicados componibles.
//
// Cada Clause tiene dos representaciones equivalentes: un fragmento SQL con argumentos
// posicionales (pushdown a PostgreSQL) y un predicado en memoria (store en memoria y tests).
// Las cláusulas se combinan siempre con AND; una opción omitida no genera cláusula.
package filter

import (
	"fmt"
	"iter"
	"strings"
)

// Builder acumula los argumentos posicionales ($1, $2, ...) de una consulta.
type Builder struct {
	args []any
}

// NewBuilder crea un builder; args iniciales ocupan $1..$n.
func NewBuilder(args ...any) *Builder {
	return &Builder{args: args}
}

// Arg registra v y devuelve su placeholder.
func (b *Builder) Arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Args argumentos en orden de aparición.
func (b *Builder) Args() []any {
	return b.args
}

// Clause predicado sobre T.
type Clause[T any] struct {
	sql   func(b *Builder) string
	match func(T) bool
}

// NewClause construye una cláusula a partir de sus dos representaciones.
func NewClause[T any](sql func(b *Builder) string, match func(T) bool) Clause[T] {
	return Clause[T]{sql: sql, match: match}
}

// SQL fragmento SQL; registra sus argumentos en b.
func (c Clause[T]) SQL(b *Builder) string { return c.sql(b) }

// Match evalúa la cláusula en memoria.
func (c Clause[T]) Match(v T) bool { return c.match(v) }

// Where devuelve "WHERE c1 AND c2 ..." o "" si no hay cláusulas.
func Where[T any](b *Builder, clauses []Clause[T]) string {
	if len(clauses) == 0 {
		return ""
	}
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		parts = append(parts, c.SQL(b))
	}
	return "WHERE " + strings.Join(parts, " AND ")
}

// MatchAll conjunción de todas las cláusulas.
func MatchAll[T any](v T, clauses []Clause[T]) bool {
	for _, c := range clauses {
		if !c.Match(v) {
			return false
		}
	}
	return true
}

// Apply devuelve una vista perezosa de los elementos que cumplen todas las cláusulas.
// No modifica items.
func Apply[T any](items []T, clauses []Clause[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !MatchAll(it, clauses) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// ── Constructores de cláusulas ────────────────────────────────────────────────

// ContainsFold subcadena sin distinguir mayúsculas (ILIKE '%v%').
func ContainsFold[T any](column, value string, field func(T) string) Clause[T] {
	pattern := "%" + escapeLike(value) + "%"
	needle := strings.ToLower(value)
	return NewClause(
		func(b *Builder) string {
			return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, b.Arg(pattern))
		},
		func(v T) bool {
			return strings.Contains(strings.ToLower(field(v)), needle)
		},
	)
}

// HasPrefix prefijo exacto (LIKE 'v%'). Un valor NULL/vacío nunca coincide.
func HasPrefix[T any](column, value string, field func(T) string) Clause[T] {
	pattern := escapeLike(value) + "%"
	return NewClause(
		func(b *Builder) string {
			return fmt.Sprintf(`%s LIKE %s ESCAPE '\'`, column, b.Arg(pattern))
		},
		func(v T) bool {
			s := field(v)
			return s != "" && strings.HasPrefix(s, value)
		},
	)
}

// AtLeast column >= bound (inclusivo).
func AtLeast[T, V any](column string, bound V, field func(T) V, cmp func(a, b V) int) Clause[T] {
	return compare(column, ">=", bound, field, func(c int) bool { return c >= 0 }, cmp)
}

// AtMost column <= bound (inclusivo).
func AtMost[T, V any](column string, bound V, field func(T) V, cmp func(a, b V) int) Clause[T] {
	return compare(column, "<=", bound, field, func(c int) bool { return c <= 0 }, cmp)
}

// LessThan column < bound.
func LessThan[T, V any](column string, bound V, field func(T) V, cmp func(a, b V) int) Clause[T] {
	return compare(column, "<", bound, field, func(c int) bool { return c < 0 }, cmp)
}

// Never cláusula que no coincide con nada (p.ej. un ID mal formado).
func Never[T any]() Clause[T] {
	return NewClause(
		func(*Builder) string { return "FALSE" },
		func(T) bool { return false },
	)
}

func compare[T, V any](column, op string, bound V, field func(T) V, ok func(int) bool, cmp func(a, b V) int) Clause[T] {
	return NewClause(
		func(b *Builder) string {
			return fmt.Sprintf("%s %s %s", column, op, b.Arg(bound))
		},
		func(v T) bool {
			return ok(cmp(field(v), bound))
		},
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutraliza los comodines de LIKE en la entrada del usuario.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
