package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain"
)

func TestError_CategoriasConErrorsIs(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
	}{
		{"validación", domain.NewValidationError(domain.MsgInvalidPhone), domain.ErrValidation},
		{"conflicto", domain.NewConflictError(domain.MsgEmailExists), domain.ErrConflict},
		{"no encontrado", domain.NewNotFoundError(domain.MsgCustomerNotFound), domain.ErrNotFound},
		{"integridad", domain.NewIntegrityError("%s: %s", domain.MsgProductsNotFound, "a, b"), domain.ErrIntegrity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.kind)
			wrapped := fmt.Errorf("capa superior: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.kind)

			var de *domain.Error
			assert.True(t, errors.As(wrapped, &de))
		})
	}
}

func TestError_MensajePublico(t *testing.T) {
	err := domain.NewIntegrityError("%s: %s", domain.MsgProductsNotFound, "999, 888")
	assert.Equal(t, "Products not found: 999, 888", err.Error())
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
