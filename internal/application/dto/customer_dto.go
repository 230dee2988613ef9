package dto

import "time"

// CreateCustomerRequest entrada de createCustomer (y de cada ítem de bulkCreateCustomers).
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=254"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

// CustomerResponse salida de un cliente. Phone es nil cuando no tiene teléfono.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCustomerPayload resultado de createCustomer.
type CreateCustomerPayload struct {
	Customer *CustomerResponse `json:"customer"`
	Message  string            `json:"message"`
}

// BulkCreateCustomersPayload resultado de bulkCreateCustomers: los creados y un mensaje
// "<nombre>: <motivo>" por cada ítem rechazado.
type BulkCreateCustomersPayload struct {
	Customers []CustomerResponse `json:"customers"`
	Errors    []string           `json:"errors"`
}
