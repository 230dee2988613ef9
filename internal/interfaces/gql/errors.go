package gql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/domain"
)

// Códigos de extensions.code en los errores GraphQL.
const (
	CodeValidation = "VALIDATION"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
	CodeIntegrity  = "INTEGRITY"
	CodeInternal   = "INTERNAL"
)

// codedError error de resolver con extensions.code (graphql-go lo detecta vía Extensions()).
type codedError struct {
	message string
	code    string
}

func (e *codedError) Error() string { return e.message }

func (e *codedError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// resolveError traduce un error de caso de uso al error que ve el cliente.
// Los errores no tipados se registran y se ocultan como "internal error".
func resolveError(log zerolog.Logger, p graphql.ResolveParams, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return &codedError{message: derr.Message, code: codeFor(derr.Kind)}
	}
	log.Error().Err(err).Str("field", p.Info.FieldName).Msg("resolver falló")
	return &codedError{message: "internal error", code: CodeInternal}
}

func codeFor(kind error) string {
	switch {
	case errors.Is(kind, domain.ErrValidation):
		return CodeValidation
	case errors.Is(kind, domain.ErrConflict):
		return CodeConflict
	case errors.Is(kind, domain.ErrNotFound):
		return CodeNotFound
	case errors.Is(kind, domain.ErrIntegrity):
		return CodeIntegrity
	default:
		return CodeInternal
	}
}
