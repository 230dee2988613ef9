// Package jobs tareas programadas del CRM (heartbeat, reporte semanal, recordatorios de
// pedidos y limpieza de clientes inactivos). Cada tarea se ejecuta una vez por invocación;
// la periodicidad la pone el planificador externo (cron).
package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GraphQLClient lo implementa *graphqlclient.Client.
type GraphQLClient interface {
	Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error
}

// Sink destino append-only de las líneas de bitácora (*applog.File).
type Sink interface {
	Append(text string) error
}

// Clock hora actual; los tests la fijan.
type Clock func() time.Time

// Job tarea ejecutable por cmd/jobs.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Execute corre job registrando inicio, duración y resultado.
func Execute(ctx context.Context, log zerolog.Logger, job Job) error {
	start := time.Now()
	l := log.With().Str("job", job.Name()).Logger()
	l.Info().Msg("job iniciado")
	if err := job.Run(ctx); err != nil {
		l.Error().Err(err).Dur("duration", time.Since(start)).Msg("job falló")
		return err
	}
	l.Info().Dur("duration", time.Since(start)).Msg("job finalizado")
	return nil
}

func orNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
