package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"contoso.com/officemock/internal/config"
	"contoso.com/officemock/internal/server"
)

func newTestServer(name string, port int) *server.HTTPServer {
	cfg := config.Service{Name: name, Version: "1.0.0", Port: port}
	return server.New(cfg, server.Info{
		Message:   name + " API",
		Endpoints: []string{"GET /health - Health check"},
	})
}

func perform(srv *server.HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
