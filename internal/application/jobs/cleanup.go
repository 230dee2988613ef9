package jobs

import (
	"context"
	"fmt"
	"time"
)

// InactivityPeriod clientes sin pedidos en este periodo se consideran inactivos.
const InactivityPeriod = 365 * 24 * time.Hour

// InactiveCustomerPurger lo implementa repository.CustomerRepository.
type InactiveCustomerPurger interface {
	DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int, error)
}

// Cleanup borra clientes sin pedidos o cuyo último pedido es anterior a un año.
type Cleanup struct {
	customers InactiveCustomerPurger
	sink      Sink
	reference Clock
}

// NewCleanup construye el job. reference fija la fecha de referencia; nil = time.Now.
func NewCleanup(customers InactiveCustomerPurger, sink Sink, reference Clock) *Cleanup {
	return &Cleanup{customers: customers, sink: sink, reference: orNow(reference)}
}

func (j *Cleanup) Name() string { return "cleanup" }

// Run borra (en cascada con sus pedidos) y escribe "<ANSIC>: Deleted N inactive customers".
func (j *Cleanup) Run(ctx context.Context) error {
	ref := j.reference()
	n, err := j.customers.DeleteInactiveSince(ctx, ref.Add(-InactivityPeriod))
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	return j.sink.Append(fmt.Sprintf("%s: Deleted %d inactive customers\n", ref.Format(time.ANSIC), n))
}

// ParseReferenceDate YYYY-MM-DD a medianoche UTC; vacío = nil (ahora).
func ParseReferenceDate(s string) (Clock, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("reference-date %q: formato esperado YYYY-MM-DD", s)
	}
	return func() time.Time { return t }, nil
}
