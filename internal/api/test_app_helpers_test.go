package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/wrenfield/carelog/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "carelog-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false, zerolog.Nop())

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func registerTestUser(t *testing.T, app *fiber.App, email string, password string, role string) {
	t.Helper()

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":    email,
		"password": password,
		"role":     role,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func postJSON(t *testing.T, app *fiber.App, authCookie string, path string, payload map[string]any) *http.Response {
	t.Helper()
	return sendJSON(t, app, authCookie, http.MethodPost, path, payload)
}

func putJSON(t *testing.T, app *fiber.App, authCookie string, path string, payload map[string]any) *http.Response {
	t.Helper()
	return sendJSON(t, app, authCookie, http.MethodPut, path, payload)
}

func sendJSON(t *testing.T, app *fiber.App, authCookie string, method string, path string, payload map[string]any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(method, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func getJSON(t *testing.T, app *fiber.App, authCookie string, path string, expectedStatus int) map[string]any {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != expectedStatus {
		t.Fatalf("GET %s expected status %d, got %d", path, expectedStatus, response.StatusCode)
	}

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("GET %s decode body: %v", path, err)
	}
	return decoded
}
