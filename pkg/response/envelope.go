package response

import (
	"errors"

	"receiptchain/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Envelope is the JSON wrapper shared by every endpoint of both gateways.
type Envelope struct {
	Success       bool   `json:"success"`
	Data          any    `json:"data,omitempty"`
	ExtractedData any    `json:"extracted_data,omitempty"`
	Error         string `json:"error,omitempty"`
	Message       string `json:"message,omitempty"`
	Code          string `json:"code,omitempty"`
}

// OK writes a ledger-style success envelope.
func OK(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Extracted writes an extraction-style success envelope.
func Extracted(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:       true,
		ExtractedData: data,
	})
}

// Fail writes a failure envelope. message is the optional human summary that
// accompanies error (e.g. "Failed to get balance").
func Fail(c *fiber.Ctx, err error, message string) error {
	appErr := apperr.From(err)
	return c.Status(appErr.Status()).JSON(Envelope{
		Success: false,
		Error:   appErr.Message,
		Message: message,
		Code:    appErr.Code,
	})
}

// ErrorHandler renders errors that escape handlers (unknown routes, body limit,
// recovered panics) as envelopes.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := apperr.CodeInternal
			if fe.Code < fiber.StatusInternalServerError {
				code = apperr.CodeValidationFailed
			}
			if fe.Code == fiber.StatusNotFound {
				code = apperr.CodeNotFound
			}
			return c.Status(fe.Code).JSON(Envelope{
				Success: false,
				Error:   fe.Message,
				Code:    code,
			})
		}

		if appErr := new(apperr.Error); errors.As(err, &appErr) {
			return Fail(c, appErr, "")
		}

		logger.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
			Success: false,
			Error:   "Internal server error",
			Code:    apperr.CodeInternal,
		})
	}
}
