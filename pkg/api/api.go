// Package api implements the REST API for evaluating expressions and
// browsing evaluation history.
package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lemonberrylabs/rpncalc/pkg/expr"
	"github.com/lemonberrylabs/rpncalc/pkg/store"
)

// Server is the calculator API server.
type Server struct {
	app   *fiber.App
	store *store.Store
}

// New creates a new API server backed by s.
func New(s *store.Store) *Server {
	srv := &Server{store: s}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Post("/v1/evaluate", srv.evaluate)
	app.Get("/v1/evaluations", srv.listEvaluations)
	app.Get("/v1/evaluations/:id", srv.getEvaluation)
	app.Delete("/v1/evaluations", srv.clearEvaluations)
	app.Get("/healthz", srv.health)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

// --- Handlers ---

type evaluateRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) evaluate(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, 400, "INVALID_ARGUMENT", fmt.Sprintf("invalid request body: %v", err))
	}
	if req.Expression == "" {
		return errorJSON(c, 400, "INVALID_ARGUMENT", "expression is required")
	}

	result, err := expr.Evaluate(req.Expression)
	if err != nil {
		rec := s.store.RecordFailure(req.Expression, errorKind(err), err.Error())
		return c.Status(422).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    422,
				"message": err.Error(),
				"kind":    rec.ErrorKind,
				"id":      rec.ID,
			},
		})
	}

	rec := s.store.RecordSuccess(req.Expression, expr.FormatResult(result))
	return c.JSON(fiber.Map{
		"id":         rec.ID,
		"expression": rec.Expression,
		"result":     rec.Result,
	})
}

func (s *Server) listEvaluations(c *fiber.Ctx) error {
	evals := s.store.List()

	items := make([]fiber.Map, len(evals))
	for i, e := range evals {
		items[i] = evaluationToJSON(e)
	}

	return c.JSON(fiber.Map{
		"evaluations": items,
	})
}

func (s *Server) getEvaluation(c *fiber.Ctx) error {
	e, err := s.store.Get(c.Params("id"))
	if err != nil {
		return errorJSON(c, 404, "NOT_FOUND", err.Error())
	}
	return c.JSON(evaluationToJSON(e))
}

func (s *Server) clearEvaluations(c *fiber.Ctx) error {
	s.store.Clear()
	return c.JSON(fiber.Map{
		"status": "cleared",
	})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// --- Helpers ---

func errorKind(err error) string {
	if kind, ok := expr.KindOf(err); ok {
		return string(kind)
	}
	return "EvalError"
}

func errorJSON(c *fiber.Ctx, code int, status, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
			"status":  status,
		},
	})
}

func evaluationToJSON(e *store.Evaluation) fiber.Map {
	m := fiber.Map{
		"id":         e.ID,
		"expression": e.Expression,
		"createTime": e.CreateTime.Format(time.RFC3339),
	}
	if e.OK() {
		m["result"] = e.Result
	} else {
		m["error"] = fiber.Map{
			"kind":    e.ErrorKind,
			"message": e.Error,
		}
	}
	return m
}
