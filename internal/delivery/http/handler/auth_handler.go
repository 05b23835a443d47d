package handler

import (
	"errors"
	"time"

	"mos-translator/internal/delivery/http/middleware"
	"mos-translator/internal/pkg/response"
	"mos-translator/internal/pkg/session"
	ucauth "mos-translator/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc       ucauth.AuthUsecase
	sessions session.Service
	ttl      time.Duration
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(uc ucauth.AuthUsecase, sessions session.Service, ttl time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, ttl: ttl}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, ucauth.ErrMissingField.Error(), err)
	}

	if _, err := h.uc.Register(c.Context(), req.Username, req.Password); err != nil {
		return mapAuthError(err)
	}

	return response.Message(c, fiber.StatusCreated, "user registered")
}

// Login verifies credentials and binds a brand-new session to the user.
// The issued token never derives from any prior session, so a cookie
// planted before authentication carries nothing over.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, ucauth.ErrMissingField.Error(), err)
	}

	u, err := h.uc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	token, err := h.sessions.Issue(u.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl / time.Second),
		Expires:  time.Now().Add(h.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return response.Message(c, fiber.StatusOK, "login successful")
}

// Logout clears the session cookie. Calling it without a session is a
// no-op that still answers 200.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return response.Message(c, fiber.StatusOK, "logged out")
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrMissingField),
		errors.Is(err, ucauth.ErrUsernameTaken),
		errors.Is(err, ucauth.ErrUnknownUser),
		errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
