package api

import (
	"errors"

	"fjacquet/bank-statement/internal/common"
	"fjacquet/bank-statement/internal/dateutils"
	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parsererror"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// DetectResponse is the body of POST /api/detect.
type DetectResponse struct {
	Success   bool              `json:"success"`
	RequestID string            `json:"request_id"`
	Format    models.FileFormat `json:"format"`
}

// ParseResponse is the body of POST /api/parse.
type ParseResponse struct {
	Success      bool                       `json:"success"`
	RequestID    string                     `json:"request_id"`
	Format       models.FileFormat          `json:"format"`
	Count        int                        `json:"count"`
	Transactions []common.TransactionRecord `json:"transactions"`
}

// InfoResponse is the body of POST /api/info.
type InfoResponse struct {
	Success   bool                 `json:"success"`
	RequestID string               `json:"request_id"`
	Statement models.StatementInfo `json:"statement"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"formats": models.SupportedFormats(),
	})
}

func (s *Server) handleDetect(c *fiber.Ctx) error {
	filename := c.Query("filename")
	content := string(c.Body())
	if content == "" && filename == "" {
		return s.fail(c, parsererror.ErrMissingInput)
	}

	format, err := s.dispatcher.Detect(filename, content)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(DetectResponse{
		Success:   true,
		RequestID: requestIDOf(c),
		Format:    format,
	})
}

func (s *Server) handleParse(c *fiber.Ctx) error {
	filename := c.Query("filename")
	content := string(c.Body())
	if content == "" {
		return s.fail(c, parsererror.ErrMissingInput)
	}

	format, err := s.resolveFormat(c, filename, content)
	if err != nil {
		return s.fail(c, err)
	}

	if c.QueryBool("validate", s.validate) {
		if err := s.dispatcher.EnsureValid(format, filename, content); err != nil {
			return s.fail(c, err)
		}
	}

	transactions, err := s.dispatcher.Parse(format, content)
	if err != nil {
		return s.fail(c, err)
	}

	s.logger.Info("Parsed statement",
		logging.F(logging.FieldRequestID, requestIDOf(c)),
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldCount, len(transactions)))

	return c.JSON(ParseResponse{
		Success:      true,
		RequestID:    requestIDOf(c),
		Format:       format,
		Count:        len(transactions),
		Transactions: common.NewTransactionRecords(transactions, dateutils.DateLayoutISO),
	})
}

func (s *Server) handleInfo(c *fiber.Ctx) error {
	content := string(c.Body())
	if content == "" {
		return s.fail(c, parsererror.ErrMissingInput)
	}

	format, err := s.resolveFormat(c, c.Query("filename"), content)
	if err != nil {
		return s.fail(c, err)
	}
	info, err := s.dispatcher.StatementInfo(format, content)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(InfoResponse{
		Success:   true,
		RequestID: requestIDOf(c),
		Statement: info,
	})
}

// resolveFormat honours an explicit ?format= and falls back to detection.
func (s *Server) resolveFormat(c *fiber.Ctx, filename, content string) (models.FileFormat, error) {
	if explicit := c.Query("format"); explicit != "" {
		return models.ParseFileFormat(explicit)
	}
	return s.dispatcher.Detect(filename, content)
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	s.logger.WithError(err).Warn("Request rejected",
		logging.F(logging.FieldRequestID, requestIDOf(c)),
		logging.F(logging.FieldStatus, code))
	return c.Status(code).JSON(ErrorResponse{
		Success:   false,
		RequestID: requestIDOf(c),
		Error:     err.Error(),
	})
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	var invalid *parsererror.InvalidFormatError
	switch {
	case errors.Is(err, parsererror.ErrMissingInput):
		return fiber.StatusBadRequest
	case errors.Is(err, parsererror.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, parsererror.ErrParseFailed),
		errors.Is(err, parsererror.ErrInvalidDate),
		errors.Is(err, parsererror.ErrInvalidAmount),
		errors.As(err, &invalid):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
