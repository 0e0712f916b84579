package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"devlink/internal/config"
	"devlink/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:          "0",
		Env:           "test",
		JWTSecret:     "test-secret",
		GithubAPIBase: "http://127.0.0.1:1",
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, database.Migrate(db), "migrate sqlite")
	return db
}

func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	return setupTestServerWithConfig(t, testConfig())
}

func setupTestServerWithConfig(t *testing.T, cfg *config.Config) (*Server, *fiber.App) {
	t.Helper()

	s, err := NewServerWithDeps(cfg, setupTestDB(t))
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// newTestAppWithMiddleware builds an app with the full middleware stack,
// for tests that exercise headers and CORS rather than handlers.
func newTestAppWithMiddleware(s *Server) *fiber.App {
	app := fiber.New()
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// doJSON performs a request against the app with an optional bearer token
// and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test")
	return resp
}

// decodeBody unmarshals a response body into out and closes it.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// registerUser registers an account and returns its token.
func registerUser(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "register %s", email)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
