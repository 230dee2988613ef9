package entity

import "time"

// Customer representa un cliente del CRM. Email es único en todo el sistema.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string // vacío = sin teléfono (NULL en la base)
	CreatedAt time.Time
}
