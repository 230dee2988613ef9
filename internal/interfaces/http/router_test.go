package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-api/internal/interfaces/gql"
	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testAPI struct {
	app       *fiber.App
	customers *usecase.CustomerUseCase
}

func newTestAPI(t *testing.T, jwtSecret string) *testAPI {
	t.Helper()
	s := memory.NewStore()
	customers := usecase.NewCustomerUseCase(s.Customers(), s)
	exec, err := gql.New(gql.Deps{
		Customers: customers,
		Products:  usecase.NewProductUseCase(s.Products()),
		Orders:    usecase.NewOrderUseCase(s.Orders(), s),
	}, logger.Nop().Zerolog())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:   "crm-test",
		GraphQL:   exec,
		ReportUC:  usecase.NewReportUseCase(s.Customers(), s.Orders()),
		PDF:       pdf.NewSummaryPDFGenerator("crm-test"),
		JWTSecret: jwtSecret,
		Log:       logger.Nop().Zerolog(),
	})
	return &testAPI{app: app, customers: customers}
}

func (a *testAPI) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postGraphQL(query string) *http.Request {
	body, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	api := newTestAPI(t, "")
	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "crm-test", body["service"])
}

func TestGraphQL_PostMutationYQuery(t *testing.T) {
	api := newTestAPI(t, "")

	resp := api.do(t, postGraphQL(`mutation {
		createCustomer(input: {name: "Ada", email: "ada@example.com"}) { message }
	}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Customer created successfully", data["createCustomer"].(map[string]interface{})["message"])

	resp = api.do(t, postGraphQL(`{ allCustomers { email } totalCustomers }`))
	body = decode(t, resp)
	data = body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["totalCustomers"])
	assert.Len(t, data["allCustomers"], 1)
}

func TestGraphQL_ErrorDeNegocioViajaEnErrors(t *testing.T) {
	api := newTestAPI(t, "")
	resp := api.do(t, postGraphQL(`{ customer(id: "nope") { id } }`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "Customer not found", first["message"])
	assert.Equal(t, gql.CodeNotFound, first["extensions"].(map[string]interface{})["code"])
}

func TestGraphQL_GetConQueryString(t *testing.T) {
	api := newTestAPI(t, "")
	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape(`{ hello }`), nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, gql.HelloMessage, body["data"].(map[string]interface{})["hello"])
}

func TestGraphQL_GetConVariables(t *testing.T) {
	api := newTestAPI(t, "")
	q := url.Values{}
	q.Set("query", `query($id: ID!) { customer(id: $id) { id } }`)
	q.Set("variables", `{"id": "00000000-0000-0000-0000-000000000000"}`)
	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "Customer not found", errs[0].(map[string]interface{})["message"])
}

func TestGraphQL_SinQuery_Retorna400(t *testing.T) {
	api := newTestAPI(t, "")
	resp := api.do(t, postGraphQL("  "))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISSING_QUERY", decode(t, resp)["code"])
}

func TestGraphQL_CuerpoInvalido_Retorna400(t *testing.T) {
	api := newTestAPI(t, "")
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := api.do(t, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGraphQL_VariablesInvalidas_Retorna400(t *testing.T) {
	api := newTestAPI(t, "")
	q := url.Values{}
	q.Set("query", `{ hello }`)
	q.Set("variables", `[1,2]`)
	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReports_SummaryJSON(t *testing.T) {
	api := newTestAPI(t, "")
	_, err := api.customers.Create(context.Background(), dto.CreateCustomerRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	stats := body["stats"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["totalCustomers"])
}

func TestReports_SummaryPDF(t *testing.T) {
	api := newTestAPI(t, "")
	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/api/reports/summary.pdf", nil))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth opcional
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ConSecret_ExigeToken(t *testing.T) {
	api := newTestAPI(t, testJWTSecret)

	resp := api.do(t, postGraphQL(`{ hello }`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := postGraphQL(`{ hello }`)
	req.Header.Set("Authorization", bearer(t, pkgjwt.RoleService))
	resp = api.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, gql.HelloMessage, decode(t, resp)["data"].(map[string]interface{})["hello"])
}

func TestRouter_ConSecret_HealthSigueAbierto(t *testing.T) {
	api := newTestAPI(t, testJWTSecret)
	resp := api.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
