package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"contoso.com/officemock/internal/config"
)

type HTTPServerSuite struct {
	suite.Suite
	srv *HTTPServer
}

func TestHTTPServer(t *testing.T) {
	suite.Run(t, new(HTTPServerSuite))
}

func (suite *HTTPServerSuite) SetupTest() {
	cfg := config.Service{Name: "user-service", Version: "1.0.0", Port: 5001}
	suite.srv = New(cfg, Info{
		Message: "User Service API",
		Endpoints: []string{
			"GET /health - Health check",
			"GET /users - List all users",
		},
	})
}

func (suite *HTTPServerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	suite.srv.Echo().ServeHTTP(rec, req)
	return rec
}

func (suite *HTTPServerSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *HTTPServerSuite) TestHealthCheck() {
	rec := suite.get("/health")

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := suite.decode(rec)
	assert.Equal(suite.T(), "healthy", body["status"])
	assert.Equal(suite.T(), "user-service", body["service"])
	assert.Equal(suite.T(), "1.0.0", body["version"])
	assert.Equal(suite.T(), "5001", body["port"])

	timestamp, ok := body["timestamp"].(string)
	require.True(suite.T(), ok)
	_, err := time.Parse(time.RFC3339, timestamp)
	assert.NoError(suite.T(), err)
}

func (suite *HTTPServerSuite) TestHome() {
	rec := suite.get("/")

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := suite.decode(rec)
	assert.Equal(suite.T(), "User Service API", body["message"])
	assert.Equal(suite.T(), "user-service", body["service"])
	assert.Len(suite.T(), body["endpoints"], 2)
}

func (suite *HTTPServerSuite) TestUnknownRoute() {
	rec := suite.get("/nope")

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Equal(suite.T(), map[string]any{"error": "Endpoint not found"}, suite.decode(rec))
}

func (suite *HTTPServerSuite) TestMethodNotAllowed() {
	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	suite.srv.Echo().ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(suite.T(), "Method not allowed", suite.decode(rec)["error"])
}

func (suite *HTTPServerSuite) TestPanicBecomesInternalServerError() {
	suite.srv.Echo().GET("/boom", func(c echo.Context) error {
		panic("boom")
	})

	rec := suite.get("/boom")

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.Equal(suite.T(), "Internal server error", suite.decode(rec)["error"])
}

func (suite *HTTPServerSuite) TestRequestIDHeaderSet() {
	rec := suite.get("/health")

	assert.NotEmpty(suite.T(), rec.Header().Get(echo.HeaderXRequestID))
}
