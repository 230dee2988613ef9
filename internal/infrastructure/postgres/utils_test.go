package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgCode_DetectaViolaciones(t *testing.T) {
	unique := fmt.Errorf("insert customer: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isCheckViolation(check))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
}

func TestValidIDs_DescartaMalFormados(t *testing.T) {
	good := "7f1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	assert.True(t, validID(good))
	assert.False(t, validID("999"))
	assert.Equal(t, []string{good}, validIDs([]string{"999", good, ""}))
}

func TestSchema_Embebido(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS order_products")
	assert.Contains(t, schemaSQL, "ON DELETE CASCADE")
}
