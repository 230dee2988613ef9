// Package validation reglas de formato e integridad de las entidades del CRM.
// Las funciones no fallan: devuelven false y el llamador decide si rechaza.
package validation

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Límites de montos: NUMERIC(12,2) admite 10 dígitos enteros; el precio es NUMERIC(10,2).
const (
	MaxAmountIntegerDigits = 10
	MaxAmountScale         = 28
)

// MaxPrice mayor precio que admite la columna products.price.
var MaxPrice = decimal.RequireFromString("99999999.99")

var (
	// +<código de país 1-3 dígitos><7-12 dígitos>, el "+" es opcional.
	internationalPhoneRe = regexp.MustCompile(`^\+?\d{1,3}\d{7,12}$`)
	// NNN-NNN-NNNN
	localPhoneRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// ValidatePhone teléfono vacío es válido (opcional); si no, debe cumplir uno de los dos formatos.
func ValidatePhone(phone string) bool {
	if phone == "" {
		return true
	}
	return internationalPhoneRe.MatchString(phone) || localPhoneRe.MatchString(phone)
}

// ValidatePrice precio estrictamente positivo.
func ValidatePrice(price decimal.Decimal) bool {
	return price.GreaterThan(decimal.Zero)
}

// ValidatePriceMax precio dentro de NUMERIC(10,2).
func ValidatePriceMax(price decimal.Decimal) bool {
	return price.LessThanOrEqual(MaxPrice)
}

// AmountFits el monto cabe en NUMERIC(12,2) tras redondear a 2 decimales.
// Solo inspecciona coeficiente y exponente, sin reescalar: un exponente enorme
// ("1e20000000") se rechaza sin materializar el número.
func AmountFits(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -MaxAmountScale {
		return false
	}
	if exp > MaxAmountIntegerDigits {
		return d.IsZero()
	}
	coef := d.Coefficient()
	if coef.BitLen() > 4*(MaxAmountIntegerDigits+MaxAmountScale) {
		return false
	}
	digits := len(coef.Abs(coef).String())
	return d.IsZero() || digits+exp <= MaxAmountIntegerDigits
}

// ValidateStock stock no negativo.
func ValidateStock(stock int) bool {
	return stock >= 0
}
