package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/interfaces/gql"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	GraphQL   *gql.Executor
	ReportUC  *usecase.ReportUseCase
	PDF       summaryRenderer
	JWTSecret string // vacío = API abierta
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	var guard []fiber.Handler
	if deps.JWTSecret != "" {
		guard = append(guard,
			AuthMiddleware(deps.JWTSecret),
			RequireRole(jwt.RoleUser, jwt.RoleService),
		)
	}

	// GraphQL
	graphqlHandler := NewGraphQLHandler(deps.GraphQL)
	gqlGroup := app.Group("/graphql", guard...)
	gqlGroup.Post("/", graphqlHandler.Post)
	gqlGroup.Get("/", graphqlHandler.Get)

	// Reportes
	api := app.Group("/api", guard...)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDF, deps.Log)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/summary.pdf", reportHandler.SummaryPDF)
}
