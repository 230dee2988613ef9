package domain

import (
	"errors"
	"fmt"
)

// Categorías de error de dominio (sin dependencias externas).
// Se comparan con errors.Is; el mensaje concreto viaja en *Error.
var (
	ErrValidation = errors.New("entrada inválida")
	ErrConflict   = errors.New("conflicto con el estado actual")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrIntegrity  = errors.New("violación de integridad")
)

// Error es un error de negocio tipado: Kind es una de las categorías anteriores y
// Message el texto que se devuelve al cliente de la API.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrConflict), etc.
func (e *Error) Unwrap() error { return e.Kind }

// NewValidationError formato de teléfono, precio, stock o campos requeridos.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError unicidad (email duplicado).
func NewConflictError(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError identificador que no resuelve.
func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewIntegrityError lista de productos vacía o productos inexistentes.
func NewIntegrityError(format string, args ...any) *Error {
	return &Error{Kind: ErrIntegrity, Message: fmt.Sprintf(format, args...)}
}

// Mensajes públicos de la API.
const (
	MsgEmailExists      = "Email already exists"
	MsgInvalidPhone     = "Invalid phone number format"
	MsgPriceNotPositive = "Price must be positive"
	MsgNegativeStock    = "Stock cannot be negative"
	MsgPriceTooLarge    = "Price must be at most 99999999.99"
	MsgAmountOutOfRange = "Amount is out of range"
	MsgCustomerNotFound = "Customer not found"
	MsgProductNotFound  = "Product not found"
	MsgOrderNotFound    = "Order not found"
	MsgEmptyProducts    = "At least one product is required"
	MsgProductsNotFound = "Products not found"
)
