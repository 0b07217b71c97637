package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterLoginEndToEnd(t *testing.T) {
	app := newTestApp(t)

	// Register -> 201 with generated id, role "user", no hash in body.
	dto := register(t, app, "a@x.com", "A", "pw")
	if dto["id"] == "" || dto["id"] == nil {
		t.Fatalf("no id in register response: %v", dto)
	}
	if dto["email"] != "a@x.com" || dto["name"] != "A" || dto["role"] != "user" {
		t.Fatalf("unexpected register DTO: %v", dto)
	}
	if _, leaked := dto["password_hash"]; leaked {
		t.Fatal("password hash leaked in register response")
	}

	// Second registration with same email -> 400.
	resp, err := app.Test(jsonReq("POST", "/api/register", fiber.Map{
		"email": "a@x.com", "password": "pw2", "name": "A2",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", resp.StatusCode)
	}
	var body map[string]any
	decode(t, resp, &body)
	if body["error"] != "Email is already in use" {
		t.Fatalf("unexpected error body: %v", body)
	}

	// Login with correct password -> 200 with token and matching user DTO.
	resp, err = app.Test(jsonReq("POST", "/api/login", fiber.Map{
		"email": "a@x.com", "password": "pw",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	var loginBody struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	decode(t, resp, &loginBody)
	if loginBody.Token == "" {
		t.Fatal("no token in login response")
	}
	if loginBody.User["id"] != dto["id"] || loginBody.User["role"] != "user" {
		t.Fatalf("login user DTO mismatch: %v vs %v", loginBody.User, dto)
	}

	// Wrong password -> 401.
	resp, err = app.Test(jsonReq("POST", "/api/login", fiber.Map{
		"email": "a@x.com", "password": "nope",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.StatusCode)
	}
	decode(t, resp, &body)
	if body["error"] != "Invalid credentials" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []fiber.Map{
		{"password": "pw", "name": "A"},
		{"email": "a@x.com", "name": "A"},
		{"email": "a@x.com", "password": "pw"},
		{},
	}
	for _, body := range cases {
		resp, err := app.Test(jsonReq("POST", "/api/register", body))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, resp.StatusCode)
		}
		var out map[string]any
		decode(t, resp, &out)
		if out["error"] != "Email, password, and name are required" {
			t.Fatalf("unexpected error body: %v", out)
		}
	}

	// Malformed email -> 400.
	resp, err := app.Test(jsonReq("POST", "/api/register", fiber.Map{
		"email": "not-an-email", "password": "pw", "name": "A",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad email: expected 400, got %d", resp.StatusCode)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/login", fiber.Map{
		"email": "ghost@x.com", "password": "pw",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown user: expected 404, got %d", resp.StatusCode)
	}
	var body map[string]any
	decode(t, resp, &body)
	if body["error"] != "User not found" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestHealthzAndNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/healthz", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq("GET", "/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("fallback: expected 404, got %d", resp.StatusCode)
	}
}
