package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// DefaultRecentOrders pedidos recientes incluidos en el resumen.
const DefaultRecentOrders = 10

// ReportUseCase agregados del CRM y datos del resumen PDF. Solo lectura.
type ReportUseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(customers repository.CustomerRepository, orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{customers: customers, orders: orders}
}

// Stats totalCustomers, totalOrders y totalRevenue.
func (uc *ReportUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	customers, err := uc.customers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	orders, err := uc.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	revenue, err := uc.orders.SumRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	return &dto.StatsResponse{
		TotalCustomers: customers,
		TotalOrders:    orders,
		TotalRevenue:   revenue,
	}, nil
}

// Summary agregados más los últimos pedidos, para el reporte PDF.
func (uc *ReportUseCase) Summary(ctx context.Context, recent int) (*dto.SummaryReport, error) {
	if recent <= 0 {
		recent = DefaultRecentOrders
	}
	stats, err := uc.Stats(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.orders.Recent(ctx, recent)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return &dto.SummaryReport{
		GeneratedAt:  time.Now().UTC(),
		Stats:        *stats,
		RecentOrders: ToOrderResponses(list),
	}, nil
}
