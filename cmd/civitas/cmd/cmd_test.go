package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civitas/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		RequestTimeout: time.Second,
		LogLevel:       "error",
		Auth:           config.AuthConfig{JWTSecret: "test-secret", JWTIssuer: "civitas-test"},
		Email:          config.EmailConfig{Provider: "noop"},
	}
}

func TestMintToken(t *testing.T) {
	cfg := testConfig()

	token, err := mintToken(cfg, "", "Alice@X.com", time.Minute)
	require.NoError(t, err)

	id, err := newVerifier(cfg).Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "Alice@X.com", id.UID)
	assert.Equal(t, "alice@x.com", id.Email)

	_, err = mintToken(cfg, "u", "", time.Minute)
	assert.Error(t, err)
	_, err = mintToken(cfg, "u", "a@x.com", 0)
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	cfg := testConfig()
	handler, err := newHandler(cfg, config.NewLogger(cfg), db)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events/created", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, err := mintToken(cfg, "u", "alice@x.com", time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "civitas_http_requests_total")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPortFlag(t *testing.T) {
	t.Cleanup(func() { serverPort = "" })

	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		serverPort = ""
		require.NoError(t, c.ParseFlags([]string{"--port", "9000"}), c.Name())
		assert.Equal(t, "9000", serverPort, c.Name())
	}
}
