package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestApp wires the full server against an in-memory database with real
// JWT auth and returns the app alongside the server.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	cfg := &config.Config{
		JWTSecret: "test-secret-0123456789-0123456789",
		Env:       "test",
	}
	middleware.InitMiddleware(cfg)

	srv, err := NewServerWithDeps(cfg, setupHandlerTestDB(t), nil)
	if err != nil {
		t.Fatalf("NewServerWithDeps: %v", err)
	}

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app, srv
}

// doJSON performs a request against the app and decodes the JSON response
// into out (if non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return resp
}

func followPath(profileID uint) string {
	return fmt.Sprintf("/api/profiles/%d/follow", profileID)
}

func likePath(postID uint) string {
	return fmt.Sprintf("/api/posts/%d/like", postID)
}

func commentsPath(postID uint) string {
	return fmt.Sprintf("/api/posts/%d/comments", postID)
}

func commentPath(postID, commentID uint) string {
	return fmt.Sprintf("/api/posts/%d/comments/%d", postID, commentID)
}

// signupUser registers an account through the API and returns its token and
// user ID.
func signupUser(t *testing.T, app *fiber.App, name, email string) (string, uint) {
	t.Helper()

	var result struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "Sup3rSecret",
	}, &result)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d", email, resp.StatusCode)
	}
	if result.Token == "" {
		t.Fatalf("signup %s: empty token", email)
	}
	return result.Token, result.User.ID
}
