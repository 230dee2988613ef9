// Package graphqlclient cliente HTTP mínimo para la API GraphQL del CRM, usado por los jobs.
package graphqlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/crm-api/pkg/jwt"
)

const (
	// serviceTokenTTL minutos de vida del token que firma cada petición.
	serviceTokenTTL = 5
	maxResponseSize = 4 << 20
)

// Config parámetros del cliente. Sin JWTSecret las peticiones van sin Authorization.
type Config struct {
	URL       string
	Timeout   time.Duration
	JWTSecret string
	Issuer    string
	Subject   string // identifica al job en el token
}

// Client ejecuta operaciones contra el endpoint /graphql.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New construye el cliente. Timeout 0 = 10 s.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Subject == "" {
		cfg.Subject = "crm-jobs"
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ResponseError errores GraphQL devueltos con HTTP 200.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// Do ejecuta query con variables y decodifica data en out (puede ser nil).
func (c *Client) Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("graphql: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graphql: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.JWTSecret != "" {
		token, err := jwt.Generate(c.cfg.JWTSecret, c.cfg.Subject, jwt.RoleService, c.cfg.Issuer, serviceTokenTTL)
		if err != nil {
			return fmt.Errorf("graphql: firmar token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("graphql: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("graphql: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("graphql: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var gqlResp response
	if err := json.Unmarshal(raw, &gqlResp); err != nil {
		return fmt.Errorf("graphql: deserializar respuesta: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			msgs[i] = e.Message
		}
		return &ResponseError{Messages: msgs}
	}
	if out == nil || len(gqlResp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("graphql: deserializar data: %w", err)
	}
	return nil
}
