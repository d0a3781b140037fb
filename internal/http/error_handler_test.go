package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bikeaccessories/internal/http/handlers"
)

// friendly error surface, no internal leakage
func TestErrorHandlerFriendlyMessage(t *testing.T) {
	app := fiber.New(fiber.Config{Views: handlers.Views(), ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())

	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})
	app.Get("/api/v1/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})

	entries := captureLogs(t, func() {
		for _, path := range []string{"/err", "/api/v1/err"} {
			resp, err := app.Test(httptest.NewRequest("GET", path, nil))
			if err != nil {
				t.Fatalf("test request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusInternalServerError {
				t.Fatalf("%s: expected 500, got %d", path, resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			s := string(body)
			if !strings.Contains(s, "Something went wrong") {
				t.Fatalf("%s: friendly message missing; body=%s", path, s)
			}
			if strings.Contains(s, "db timeout") || strings.Contains(s, "secret") {
				t.Fatalf("%s: internal details leaked to user; body=%s", path, s)
			}
		}
	})
	e, ok := findLog(entries, "server.error")
	if !ok {
		t.Fatal("server.error not logged")
	}
	if e.ReqID == "" {
		t.Fatal("server.error missing req_id")
	}
}

func TestNotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := app.Test(httptest.NewRequest("GET", "/nope", nil))
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusNotFound || !strings.Contains(string(body), "Page not found") {
		t.Fatalf("want html 404, got %d %s", resp.StatusCode, body)
	}

	var out map[string]string
	resp = do(t, app, "GET", "/api/v1/nope", nil, &out)
	if resp.StatusCode != fiber.StatusNotFound || out["error"] != "not found" {
		t.Fatalf("want json 404, got %d %v", resp.StatusCode, out)
	}
}
