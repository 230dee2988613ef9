package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsResponse agregados del CRM (totalCustomers, totalOrders, totalRevenue).
type StatsResponse struct {
	TotalCustomers int             `json:"totalCustomers"`
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

// SummaryReport resumen del CRM (JSON y PDF).
type SummaryReport struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	Stats        StatsResponse   `json:"stats"`
	RecentOrders []OrderResponse `json:"recentOrders"`
}
