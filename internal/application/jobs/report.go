package jobs

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const reportQuery = `query { totalCustomers totalOrders totalRevenue }`

const reportTimeLayout = "2006-01-02 15:04:05"

// Report resumen semanal: clientes, pedidos e ingresos totales.
type Report struct {
	client GraphQLClient
	sink   Sink
	now    Clock
}

// NewReport construye el job. now nil = time.Now.
func NewReport(client GraphQLClient, sink Sink, now Clock) *Report {
	return &Report{client: client, sink: sink, now: orNow(now)}
}

func (j *Report) Name() string { return "report" }

// Run escribe la línea del reporte. Si la consulta falla escribe la línea de error y
// devuelve el error.
func (j *Report) Run(ctx context.Context) error {
	var out struct {
		TotalCustomers int             `json:"totalCustomers"`
		TotalOrders    int             `json:"totalOrders"`
		TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	}
	if err := j.client.Do(ctx, reportQuery, nil, &out); err != nil {
		line := fmt.Sprintf("%s - Error generating report: %v\n", j.now().Format(reportTimeLayout), err)
		if werr := j.sink.Append(line); werr != nil {
			return fmt.Errorf("report: %w (bitácora: %v)", err, werr)
		}
		return fmt.Errorf("report: %w", err)
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, $%s revenue\n",
		j.now().Format(reportTimeLayout), out.TotalCustomers, out.TotalOrders, out.TotalRevenue.StringFixed(2))
	return j.sink.Append(line)
}
