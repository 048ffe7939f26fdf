package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"receiptchain/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("%s: decode: %v", path, err)
	}
	return resp.StatusCode, body
}

func TestEnvelopes(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/ok", func(c *fiber.Ctx) error { return OK(c, fiber.Map{"id": 1}, "done") })
	app.Get("/extracted", func(c *fiber.Ctx) error { return Extracted(c, fiber.Map{"confidence": 0.5}) })
	app.Get("/missing", func(c *fiber.Ctx) error { return Fail(c, apperr.MissingField("billId"), "Invalid request data") })
	app.Get("/plain", func(c *fiber.Ctx) error { return Fail(c, errors.New("boom"), "") })
	app.Get("/escaped", func(c *fiber.Ctx) error { return apperr.NotFound("Recognition not found") })
	app.Get("/internal", func(c *fiber.Ctx) error { return errors.New("db password=hunter2") })

	status, body := decode(t, app, "/ok")
	if status != 200 || body["success"] != true || body["message"] != "done" {
		t.Fatalf("unexpected ok %d %v", status, body)
	}
	if _, ok := body["error"]; ok {
		t.Fatal("empty error should be omitted")
	}

	_, body = decode(t, app, "/extracted")
	if _, ok := body["extracted_data"]; !ok {
		t.Fatalf("missing extracted_data: %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Fatal("data should be omitted in extraction envelope")
	}

	status, body = decode(t, app, "/missing")
	if status != 400 || body["error"] != "Missing required field: billId" || body["code"] != "SYS_10003" {
		t.Fatalf("unexpected missing-field %d %v", status, body)
	}

	status, body = decode(t, app, "/plain")
	if status != 500 || body["error"] != "boom" || body["code"] != "SYS_10001" {
		t.Fatalf("unexpected plain %d %v", status, body)
	}

	status, body = decode(t, app, "/escaped")
	if status != 404 || body["code"] != "SYS_10005" {
		t.Fatalf("unexpected escaped %d %v", status, body)
	}

	status, body = decode(t, app, "/internal")
	if status != 500 || body["error"] != "Internal server error" {
		t.Fatalf("internal details leaked: %d %v", status, body)
	}

	status, body = decode(t, app, "/unknown")
	if status != 404 || body["success"] != false {
		t.Fatalf("unexpected unknown route %d %v", status, body)
	}
}
