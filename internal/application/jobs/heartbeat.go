package jobs

import (
	"context"
	"fmt"
)

const heartbeatQuery = `query { hello }`

// Heartbeat deja constancia de que el CRM está vivo y de si el endpoint GraphQL responde.
// Siempre escribe una línea; el fallo del endpoint queda en la línea, no en el error.
type Heartbeat struct {
	client GraphQLClient
	sink   Sink
	now    Clock
}

// NewHeartbeat construye el job. now nil = time.Now.
func NewHeartbeat(client GraphQLClient, sink Sink, now Clock) *Heartbeat {
	return &Heartbeat{client: client, sink: sink, now: orNow(now)}
}

func (j *Heartbeat) Name() string { return "heartbeat" }

// Run DD/MM/YYYY-HH:MM:SS CRM is alive[ (estado GraphQL)]
func (j *Heartbeat) Run(ctx context.Context) error {
	line := j.now().Format("02/01/2006-15:04:05") + " CRM is alive"

	var out struct {
		Hello string `json:"hello"`
	}
	if err := j.client.Do(ctx, heartbeatQuery, nil, &out); err != nil {
		line += fmt.Sprintf(" (GraphQL check failed: %v)", err)
	} else if out.Hello != "" {
		line += " (GraphQL endpoint responsive)"
	}
	return j.sink.Append(line + "\n")
}
