package response

import "github.com/gofiber/fiber/v3"

const (
	MessageUnauthorized        = "unauthorized"
	MessageBadRequest          = "bad request"
	MessageInternalServerError = "internal server error"
)

const problemContentType = "application/problem+json"

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ProblemDetails is the RFC 7807 envelope used by the MOS lookup API.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

func Message(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message})
}

func Error(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

func Problem(c fiber.Ctx, p ProblemDetails) error {
	if p.Type == "" {
		p.Type = "about:blank"
	}
	if err := c.Status(p.Status).JSON(p); err != nil {
		return err
	}
	// JSON() stamps application/json; the problem media type wins.
	c.Set(fiber.HeaderContentType, problemContentType)
	return nil
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return "error"
	}
}
