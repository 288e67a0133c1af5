// Package web provides the embedded web UI for the calculator.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lemonberrylabs/rpncalc/pkg/expr"
	"github.com/lemonberrylabs/rpncalc/pkg/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the web UI pages.
type Handler struct {
	store   *store.Store
	funcMap template.FuncMap
}

// New creates a new web UI handler backed by s.
func New(s *store.Store) *Handler {
	return &Handler{
		store: s,
		funcMap: template.FuncMap{
			"formatTime": formatTime,
		},
	}
}

// Register adds web UI routes to the Fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/ui", h.index)
	app.Post("/ui", h.evaluate)

	// Redirect root to UI
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/ui")
	})
}

type indexContent struct {
	Expression  string
	Result      string
	Error       string
	Evaluations []*store.Evaluation
}

func (h *Handler) index(c *fiber.Ctx) error {
	return h.render(c, indexContent{Evaluations: h.store.List()})
}

func (h *Handler) evaluate(c *fiber.Ctx) error {
	expression := c.FormValue("expression")
	content := indexContent{Expression: expression}

	if expression == "" {
		content.Error = "enter an expression"
	} else if v, err := expr.Evaluate(expression); err != nil {
		kind := "EvalError"
		if k, ok := expr.KindOf(err); ok {
			kind = string(k)
		}
		h.store.RecordFailure(expression, kind, err.Error())
		content.Error = err.Error()
	} else {
		rec := h.store.RecordSuccess(expression, expr.FormatResult(v))
		content.Result = rec.Result
	}

	content.Evaluations = h.store.List()
	return h.render(c, content)
}

func (h *Handler) render(c *fiber.Ctx, content indexContent) error {
	tmpl := template.Must(
		template.New("").Funcs(h.funcMap).ParseFS(templateFS, "templates/index.html"),
	)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.html", content); err != nil {
		return c.Status(500).SendString(fmt.Sprintf("template error: %v", err))
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Send(buf.Bytes())
}

func formatTime(t time.Time) string {
	return t.Format("15:04:05")
}
