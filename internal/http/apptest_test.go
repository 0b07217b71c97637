package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/config"
	"inkwell/internal/http/handlers"
	"inkwell/internal/repos"
)

const (
	testSecret    = "test-secret"
	adminEmail    = "admin@inkwell.test"
	adminPassword = "Adm1nPass!"
)

func testConfig() config.Config {
	return config.Config{
		DBDSN:      ":memory:",
		JWTSecret:  testSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

// newTestApp builds the full API surface over a fresh in-memory database
// with one seeded admin, mirroring main's wiring.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := testConfig()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repos.SeedAdmin(db, adminEmail, "Admin", adminPassword, cfg.BcryptCost); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	app := fiber.New()
	app.Use(requestid.New())
	handlers.Register(app, handlers.NewDeps(db, cfg))
	return app
}

func jsonReq(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authReq(method, target, token string, body any) *http.Request {
	req := jsonReq(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func register(t *testing.T, app *fiber.App, email, name, password string) map[string]any {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/register", fiber.Map{
		"email": email, "password": password, "name": name,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, resp.StatusCode)
	}
	var dto map[string]any
	decode(t, resp, &dto)
	return dto
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/login", fiber.Map{
		"email": email, "password": password,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, resp.StatusCode)
	}
	var out map[string]any
	decode(t, resp, &out)
	tok, _ := out["token"].(string)
	if tok == "" {
		t.Fatal("login returned no token")
	}
	return tok
}
