package middleware

import (
	"errors"
	"log"

	"mos-translator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the transport-facing error: a status, a client-safe
// message, and the underlying cause kept for server-side logs only.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ProblemError renders as RFC 7807 problem+json. The MOS lookup routes
// use it; everything else speaks the plain {error} envelope.
type ProblemError struct {
	Status   int
	Title    string
	Detail   string
	Instance string
	Cause    error
}

func (e *ProblemError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Title + ": " + e.Cause.Error()
	}
	return e.Title
}

func (e *ProblemError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: method=%s path=%s err=%v", c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		var probErr *ProblemError
		if errors.As(err, &probErr) {
			if probErr.Status >= 500 {
				m.logger.Printf("internal error: method=%s path=%s err=%v", c.Method(), c.Path(), probErr)
				return response.Problem(c, response.ProblemDetails{
					Title:    "Internal Server Error",
					Status:   fiber.StatusInternalServerError,
					Detail:   "An unexpected error occurred on the server.",
					Instance: probErr.Instance,
				})
			}
			return response.Problem(c, response.ProblemDetails{
				Title:    probErr.Title,
				Status:   probErr.Status,
				Detail:   probErr.Detail,
				Instance: probErr.Instance,
			})
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			status := appErr.StatusCode
			if status <= 0 || status >= 500 {
				m.logger.Printf("internal error: method=%s path=%s err=%v", c.Method(), c.Path(), appErr)
				return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
			return response.Error(c, status, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status := fiberErr.Code
			if status <= 0 || status >= 500 {
				m.logger.Printf("internal error: method=%s path=%s err=%v", c.Method(), c.Path(), fiberErr)
				return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
			return response.Error(c, status, fiberErr.Message)
		}

		m.logger.Printf("internal error: method=%s path=%s err=%v", c.Method(), c.Path(), err)
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
	}
}
