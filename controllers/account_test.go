package controllers_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/controllers"
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
	if err := db.AutoMigrate(&models.User{}, &models.CashierProfile{}, &models.ActivityLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
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

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	openTestDB(t)

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Post("/admins", controllers.CreateAdmin)

	email := fmt.Sprintf("head-%s@school.test", uuid.NewString()[:8])
	body := fmt.Sprintf(`{"first_name":"Asha","email":%q,"password":"supersecret"}`, email)

	st, _ := postJSON(t, app, "/admins", body)
	if st != fiber.StatusCreated {
		t.Fatalf("first create status = %d, want %d", st, fiber.StatusCreated)
	}

	st, resp := postJSON(t, app, "/admins", body)
	if st != fiber.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want %d", st, fiber.StatusBadRequest)
	}
	if !strings.Contains(resp, "email already exists") {
		t.Fatalf("duplicate create body = %q, want email-already-exists message", resp)
	}
}
