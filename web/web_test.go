package web

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lemonberrylabs/rpncalc/pkg/store"
)

func setupTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	s := store.New()
	h := New(s)
	app := fiber.New()
	h.Register(app)
	return app, s
}

func getPage(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, app *fiber.App, expression string) (int, string) {
	t.Helper()
	form := url.Values{"expression": {expression}}
	req := httptest.NewRequest("POST", "/ui", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestIndexEmpty(t *testing.T) {
	app, _ := setupTestApp(t)

	code, html := getPage(t, app, "/ui")
	if code != 200 {
		t.Fatalf("expected 200, got %d: %s", code, html)
	}
	if !strings.Contains(html, "Calculator") {
		t.Error("expected Calculator heading")
	}
	if !strings.Contains(html, "No evaluations yet.") {
		t.Error("expected empty state message")
	}
}

func TestRootRedirects(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 302 {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/ui" {
		t.Errorf("expected redirect to /ui, got %q", loc)
	}
}

func TestEvaluateForm(t *testing.T) {
	app, s := setupTestApp(t)

	code, html := postForm(t, app, "(2 + 3) * 4")
	if code != 200 {
		t.Fatalf("expected 200, got %d: %s", code, html)
	}
	if !strings.Contains(html, "Answer: 20") {
		t.Errorf("expected Answer: 20 in page:\n%s", html)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 recorded evaluation, got %d", s.Len())
	}
}

func TestEvaluateFormError(t *testing.T) {
	app, s := setupTestApp(t)

	code, html := postForm(t, app, "1 + 2)")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(html, "unexpected &#39;)&#39;") && !strings.Contains(html, "unexpected ')'") {
		t.Errorf("expected paren error in page:\n%s", html)
	}
	if s.Len() != 1 {
		t.Errorf("failures should be recorded, got %d records", s.Len())
	}
}

func TestHistoryShown(t *testing.T) {
	app, s := setupTestApp(t)
	s.RecordSuccess("1 + 1", "2")
	s.RecordFailure("5 / 0", "EvalError", "division by zero")

	_, html := getPage(t, app, "/ui")
	if !strings.Contains(html, "1 + 1") {
		t.Error("expected stored expression in history")
	}
	if !strings.Contains(html, "EvalError: division by zero") {
		t.Error("expected stored failure in history")
	}
}
