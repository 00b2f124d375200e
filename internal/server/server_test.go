package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coachblog/internal/auth"
	"coachblog/internal/config"
	"coachblog/internal/database"
	"coachblog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "unit-test-secret-0123456789abcdef"

func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:    testJWTSecret,
		Port:         "4000",
		DatabasePath: ":memory:",
		Env:          "test",
	}

	srv := NewServerWithDeps(cfg, db, nil)
	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv
}

// seedAdmin creates an admin account and returns it with its plaintext
// password for use in login requests.
func seedAdmin(t *testing.T, srv *Server) (*models.Admin, string) {
	t.Helper()

	password := "correct horse battery staple"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	admin := &models.Admin{
		Email:        "coach@example.com",
		PasswordHash: hash,
		Role:         "editor",
	}
	require.NoError(t, srv.adminRepo.Create(context.Background(), admin))
	return admin, password
}

func authToken(t *testing.T, srv *Server, admin *models.Admin) string {
	t.Helper()
	token, err := srv.tokens.Issue(admin)
	require.NoError(t, err)
	return token
}

// doRequest performs an in-process request and decodes the JSON response body
// into a generic map. A nil body sends an empty request.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func TestRoot(t *testing.T) {
	t.Parallel()

	app, _ := newTestServer(t)
	status, body := doRequest(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	app, _ := newTestServer(t)
	status, body := doRequest(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "coachblog-backend", body["service"])
}
