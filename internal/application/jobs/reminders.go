package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ReminderWindow antigüedad máxima de los pedidos que reciben recordatorio.
const ReminderWindow = 7 * 24 * time.Hour

const remindersQuery = `query RecentOrders($since: DateTime!) {
	allOrders(orderDateGte: $since, orderBy: "orderDate") {
		id
		customer { email }
	}
}`

// Reminders registra un recordatorio por cada pedido de los últimos 7 días.
type Reminders struct {
	client GraphQLClient
	sink   Sink
	now    Clock
	log    zerolog.Logger
}

// NewReminders construye el job. now nil = time.Now.
func NewReminders(client GraphQLClient, sink Sink, now Clock, log zerolog.Logger) *Reminders {
	return &Reminders{client: client, sink: sink, now: orNow(now), log: log}
}

func (j *Reminders) Name() string { return "reminders" }

// Run consulta y escribe el bloque completo de una vez. Si la consulta falla no toca el archivo.
func (j *Reminders) Run(ctx context.Context) error {
	now := j.now()
	var out struct {
		AllOrders []struct {
			ID       string `json:"id"`
			Customer struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"allOrders"`
	}
	vars := map[string]interface{}{"since": now.Add(-ReminderWindow).Format(time.RFC3339)}
	if err := j.client.Do(ctx, remindersQuery, vars, &out); err != nil {
		j.log.Error().Err(err).Msg("Error processing order reminders")
		return fmt.Errorf("reminders: %w", err)
	}

	ts := now.Format("2006-01-02 15:04:05")
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Order Reminders %s ===\n", ts)
	for _, o := range out.AllOrders {
		fmt.Fprintf(&b, "%s: Order %s - Customer: %s\n", ts, o.ID, o.Customer.Email)
	}
	if err := j.sink.Append(b.String()); err != nil {
		return err
	}
	j.log.Info().Int("orders", len(out.AllOrders)).Msg("Order reminders processed!")
	return nil
}
