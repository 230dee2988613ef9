package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// summaryRenderer lo implementa *pdf.SummaryPDFGenerator.
type summaryRenderer interface {
	GenerateSummaryPDF(ctx context.Context, report *dto.SummaryReport) ([]byte, error)
}

// ReportHandler endpoints de reportes del CRM.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	pdf summaryRenderer
	log zerolog.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, pdf summaryRenderer, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, log: log}
}

// Summary GET /api/reports/summary
//
// Totales (clientes, pedidos, ingresos) y los últimos pedidos en JSON.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	report, err := h.uc.Summary(c.Context(), c.QueryInt("recent", usecase.DefaultRecentOrders))
	if err != nil {
		return h.internal(c, "resumen", err)
	}
	return c.JSON(report)
}

// SummaryPDF GET /api/reports/summary.pdf
//
// El mismo resumen renderizado como PDF (maroto).
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	report, err := h.uc.Summary(c.Context(), c.QueryInt("recent", usecase.DefaultRecentOrders))
	if err != nil {
		return h.internal(c, "resumen", err)
	}
	body, err := h.pdf.GenerateSummaryPDF(c.Context(), report)
	if err != nil {
		return h.internal(c, "pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="crm-summary-%s.pdf"`, report.GeneratedAt.Format("20060102")))
	return c.Send(body)
}

func (h *ReportHandler) internal(c *fiber.Ctx, step string, err error) error {
	h.log.Error().Err(err).Str("step", step).Msg("reporte falló")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el reporte"})
}
