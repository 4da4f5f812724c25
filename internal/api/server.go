// Package api exposes statement detection and parsing over HTTP.
package api

import (
	"context"
	"errors"
	"time"

	"fjacquet/bank-statement/internal/factory"
	"fjacquet/bank-statement/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	localRequestID  = "request_id"
)

// Options configures a Server.
type Options struct {
	// BodyLimit is the largest accepted statement, in bytes.
	BodyLimit int
	// Validate makes /api/parse run the strict format check unless the
	// request overrides it.
	Validate bool
}

// Server wires the HTTP routes to a dispatcher.
type Server struct {
	app        *fiber.App
	dispatcher *factory.Dispatcher
	logger     logging.Logger
	validate   bool
}

// NewServer builds the fiber application and registers every route.
func NewServer(dispatcher *factory.Dispatcher, logger logging.Logger, opts Options) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	cfg := fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	}
	if opts.BodyLimit > 0 {
		cfg.BodyLimit = opts.BodyLimit
	}

	s := &Server{
		app:        fiber.New(cfg),
		dispatcher: dispatcher,
		logger:     logger,
		validate:   opts.Validate,
	}
	s.app.Use(s.requestID)

	group := s.app.Group("/api")
	group.Get("/health", s.handleHealth)
	group.Post("/detect", s.handleDetect)
	group.Post("/parse", s.handleParse)
	group.Post("/info", s.handleInfo)
	return s
}

// App exposes the fiber application, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails or Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("Starting API server", logging.F("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(localRequestID, id)
	c.Set(headerRequestID, id)

	start := time.Now()
	err := c.Next()
	s.logger.Debug("Handled request",
		logging.F(logging.FieldRequestID, id),
		logging.F(logging.FieldOperation, c.Method()+" "+c.Path()),
		logging.F(logging.FieldStatus, c.Response().StatusCode()),
		logging.F(logging.FieldDuration, time.Since(start)))
	return err
}

func requestIDOf(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes or oversized bodies, in the same JSON shape as handled failures.
func errorHandler(logger logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.WithError(err).Error("Request failed",
				logging.F(logging.FieldRequestID, requestIDOf(c)))
		}
		return c.Status(code).JSON(ErrorResponse{
			Success:   false,
			RequestID: requestIDOf(c),
			Error:     err.Error(),
		})
	}
}
