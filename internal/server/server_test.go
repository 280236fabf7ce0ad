package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenanttheme/internal/config"
	"tenanttheme/internal/database/dbtest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, router http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewServerUsesConfiguredPort(t *testing.T) {
	cfg := config.Config{Server: config.ServerConfig{Port: 4000, APIPrefix: "/api"}}
	srv := NewServer(cfg, dbtest.New(t), zerolog.Nop())

	assert.Equal(t, ":4000", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.NotZero(t, srv.ReadTimeout)
}

func TestRouterServesAPIUnderPrefix(t *testing.T) {
	router := NewRouter(config.ServerConfig{APIPrefix: "/api"}, dbtest.New(t), zerolog.Nop())

	w := serve(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"service":"tenant-theme-poc-backend"}`, w.Body.String())

	w = serve(t, router, http.MethodGet, "/api/tenants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Tenants []map[string]any `json:"tenants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Tenants, 3)

	w = serve(t, router, http.MethodGet, "/api/theme-config/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, w.Body.String())
}

func TestRouterServesAtRootWithEmptyPrefix(t *testing.T) {
	router := NewRouter(config.ServerConfig{}, dbtest.New(t), zerolog.Nop())

	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/tenants", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, router, http.MethodGet, "/theme-config/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, router, http.MethodGet, "/theme-config/9999", nil).Code)
}

func TestRouterAllowsAnyOriginByDefault(t *testing.T) {
	router := NewRouter(config.ServerConfig{APIPrefix: "/api", AllowedOrigins: []string{"*"}}, dbtest.New(t), zerolog.Nop())

	w := serve(t, router, http.MethodGet, "/api/tenants", http.Header{"Origin": {"http://localhost:5173"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	preflight := http.Header{
		"Origin":                        {"http://dashboard.example.com"},
		"Access-Control-Request-Method": {http.MethodGet},
	}
	w = serve(t, router, http.MethodOptions, "/api/theme-config/1", preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRestrictsConfiguredOrigins(t *testing.T) {
	cfg := config.ServerConfig{APIPrefix: "/api", AllowedOrigins: []string{"http://localhost:5173"}}
	router := NewRouter(cfg, dbtest.New(t), zerolog.Nop())

	w := serve(t, router, http.MethodGet, "/api/health", http.Header{"Origin": {"http://localhost:5173"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(t, router, http.MethodGet, "/api/health", http.Header{"Origin": {"http://evil.example.com"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterEchoesRequestID(t *testing.T) {
	router := NewRouter(config.ServerConfig{APIPrefix: "/api"}, dbtest.New(t), zerolog.Nop())

	w := serve(t, router, http.MethodGet, "/api/health", http.Header{"X-Request-Id": {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
