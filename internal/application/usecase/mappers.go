package usecase

import (
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	out := &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if c.Phone != "" {
		phone := c.Phone
		out.Phone = &phone
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		LowStock:  p.IsLowStock(),
		CreatedAt: p.CreatedAt,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	products := make([]dto.ProductResponse, 0, len(o.Products))
	for i := range o.Products {
		products = append(products, *toProductResponse(&o.Products[i]))
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		Customer:    toCustomerResponse(o.Customer),
		Products:    products,
		TotalAmount: o.TotalAmount(),
		OrderDate:   o.OrderDate,
		CreatedAt:   o.CreatedAt,
	}
}

// ToOrderResponses convierte una lista de pedidos (uso compartido con jobs y reportes).
func ToOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}
