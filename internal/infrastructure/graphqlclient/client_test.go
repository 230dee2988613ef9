package graphqlclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/infrastructure/graphqlclient"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

func TestDo_DecodificaData(t *testing.T) {
	var got struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"hello":"Hello, GraphQL!"}}`))
	}))
	defer srv.Close()

	c := graphqlclient.New(graphqlclient.Config{URL: srv.URL})
	var out struct {
		Hello string `json:"hello"`
	}
	require.NoError(t, c.Do(context.Background(), "{ hello }", map[string]interface{}{"x": 1}, &out))
	assert.Equal(t, "Hello, GraphQL!", out.Hello)
	assert.Equal(t, "{ hello }", got.Query)
	assert.EqualValues(t, 1, got.Variables["x"])
}

func TestDo_FirmaTokenDeServicio(t *testing.T) {
	const secret = "jobs-secret"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "Bearer "))
		subject, role, err := jwt.Parse(secret, strings.TrimPrefix(auth, "Bearer "))
		assert.NoError(t, err)
		assert.Equal(t, "crm-jobs", subject)
		assert.Equal(t, jwt.RoleService, role)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := graphqlclient.New(graphqlclient.Config{URL: srv.URL, JWTSecret: secret, Issuer: "crm"})
	require.NoError(t, c.Do(context.Background(), "{ hello }", nil, nil))
}

func TestDo_ErroresGraphQL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"boom"},{"message":"bang"}]}`))
	}))
	defer srv.Close()

	err := graphqlclient.New(graphqlclient.Config{URL: srv.URL}).Do(context.Background(), "{ x }", nil, nil)
	var respErr *graphqlclient.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, []string{"boom", "bang"}, respErr.Messages)
	assert.Equal(t, "graphql: boom; bang", err.Error())
}

func TestDo_StatusNoOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"MISSING_TOKEN"}`))
	}))
	defer srv.Close()

	err := graphqlclient.New(graphqlclient.Config{URL: srv.URL}).Do(context.Background(), "{ x }", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "MISSING_TOKEN")
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := graphqlclient.New(graphqlclient.Config{URL: srv.URL, Timeout: 50 * time.Millisecond})
	err := c.Do(context.Background(), "{ x }", nil, nil)
	require.Error(t, err)
}
