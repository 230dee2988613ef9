package gql

import (
	"context"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
)

// Request cuerpo estándar de una petición GraphQL sobre HTTP.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Executor ejecuta peticiones contra el schema y registra cada operación.
type Executor struct {
	schema graphql.Schema
	log    zerolog.Logger
}

// NewExecutor construye el executor sobre un schema ya compuesto.
func NewExecutor(schema graphql.Schema, log zerolog.Logger) *Executor {
	return &Executor{schema: schema, log: log}
}

// New compone los módulos estándar y devuelve el executor.
func New(deps Deps, log zerolog.Logger) (*Executor, error) {
	schema, err := NewSchema(DefaultModules(deps, log)...)
	if err != nil {
		return nil, err
	}
	return NewExecutor(schema, log), nil
}

// Execute resuelve la petición. Los errores viajan en Result.Errors, nunca como error de Go.
func (e *Executor) Execute(ctx context.Context, req Request) *graphql.Result {
	start := time.Now()
	res := graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	ev := e.log.Debug()
	if res.HasErrors() {
		ev = e.log.Warn()
	}
	ev.Str("operation", req.OperationName).
		Dur("duration", time.Since(start)).
		Int("errors", len(res.Errors)).
		Msg("graphql")
	return res
}
