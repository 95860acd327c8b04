package middlewares_test

import (
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/middlewares"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	if err := db.AutoMigrate(&models.IdempotencyKey{}); err != nil {
		t.Fatalf("migrate idempotency_keys: %v", err)
	}
	database.DB = db
}

// newKeyedApp mounts the idempotency guard in front of a counting handler
// that returns a fresh receipt on every real invocation.
func newKeyedApp(calls *int) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", "cashier-1")
		return c.Next()
	})
	app.Use(middlewares.Idempotency())
	app.Post("/payments", func(c *fiber.Ctx) error {
		*calls++
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"receipt": uuid.NewString()})
	})
	return app
}

func postKeyed(t *testing.T, app *fiber.App, key, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(b)
}

// A double-submitted request with the same key must run the handler exactly
// once and replay the first response byte-for-byte.
func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	openTestDB(t)

	var calls int
	app := newKeyedApp(&calls)
	key := uuid.NewString()

	st1, body1 := postKeyed(t, app, key, `{"amount":100}`)
	st2, body2 := postKeyed(t, app, key, `{"amount":100}`)

	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if st1 != fiber.StatusCreated || st2 != fiber.StatusCreated {
		t.Fatalf("statuses = %d, %d, want both %d", st1, st2, fiber.StatusCreated)
	}
	if body1 != body2 {
		t.Fatalf("replayed body %q differs from original %q", body2, body1)
	}
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	openTestDB(t)

	var calls int
	app := newKeyedApp(&calls)
	key := uuid.NewString()

	postKeyed(t, app, key, `{"amount":100}`)
	st, _ := postKeyed(t, app, key, `{"amount":999}`)

	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if st != fiber.StatusConflict {
		t.Fatalf("status = %d, want %d", st, fiber.StatusConflict)
	}
}

func TestIdempotencySkipsUnkeyedRequests(t *testing.T) {
	openTestDB(t)

	var calls int
	app := newKeyedApp(&calls)

	postKeyed(t, app, "", `{"amount":100}`)
	postKeyed(t, app, "", `{"amount":100}`)

	if calls != 2 {
		t.Fatalf("handler ran %d times, want 2", calls)
	}
}
