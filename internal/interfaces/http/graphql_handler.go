package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/interfaces/gql"
)

// GraphQLHandler expone el executor GraphQL sobre HTTP.
type GraphQLHandler struct {
	exec *gql.Executor
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(exec *gql.Executor) *GraphQLHandler {
	return &GraphQLHandler{exec: exec}
}

// Post POST /graphql con cuerpo {query, variables, operationName}.
// Los errores de resolución van en el campo errors con HTTP 200; solo un cuerpo
// ilegible o sin query responde 400.
func (h *GraphQLHandler) Post(c *fiber.Ctx) error {
	var req gql.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.execute(c, req)
}

// Get GET /graphql?query=...&variables=<json>&operationName=...
func (h *GraphQLHandler) Get(c *fiber.Ctx) error {
	req := gql.Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VARIABLES", Message: "variables debe ser un objeto JSON"})
		}
	}
	return h.execute(c, req)
}

func (h *GraphQLHandler) execute(c *fiber.Ctx, req gql.Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QUERY", Message: "query requerido"})
	}
	return c.JSON(h.exec.Execute(c.Context(), req))
}
