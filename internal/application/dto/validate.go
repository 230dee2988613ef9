package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/validation"
)

var validate = newValidator()

// newValidator registra las reglas de negocio como tags y validaciones de struct.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	// Los mensajes usan el nombre del campo en la API (tag json).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validatorv10.FieldLevel) bool {
		return validation.ValidatePhone(fl.Field().String())
	})
	v.RegisterStructValidation(createProductStructValidation, CreateProductRequest{})
	return v
}

// createProductStructValidation precio positivo y acotado, stock no negativo.
func createProductStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateProductRequest)
	if !validation.ValidatePrice(req.Price) {
		sl.ReportError(req.Price, "price", "Price", "price_positive", "")
	} else if !validation.ValidatePriceMax(req.Price) {
		sl.ReportError(req.Price, "price", "Price", "price_max", "")
	}
	if !validation.ValidateStock(req.Stock) {
		sl.ReportError(req.Stock, "stock", "Stock", "stock_nonnegative", "")
	}
}

// Validate valida in y traduce los fallos a un ValidationError con mensajes para el cliente.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate input: %w", err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.NewValidationError("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validatorv10.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return "Enter a valid email address"
	case "phone":
		return domain.MsgInvalidPhone
	case "price_positive":
		return domain.MsgPriceNotPositive
	case "price_max":
		return domain.MsgPriceTooLarge
	case "stock_nonnegative":
		return domain.MsgNegativeStock
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
