package middleware

import (
	"errors"

	"mos-translator/internal/pkg/response"
	"mos-translator/internal/pkg/session"
	"mos-translator/internal/repository"

	"github.com/gofiber/fiber/v3"
)

// CtxUserKey holds the resolved *repository.User for the request, or
// nothing when the caller is anonymous.
const CtxUserKey = "auth_user"

type SessionMiddleware struct {
	sessions session.Service
	users    repository.UserRepository
}

func NewSessionMiddleware(sessions session.Service, users repository.UserRepository) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, users: users}
}

// Require guards identity-scoped routes: a missing, invalid, or expired
// cookie, or a session bound to a user that no longer exists, all answer
// 401 before the handler runs.
func (m *SessionMiddleware) Require() fiber.Handler {
	return func(c fiber.Ctx) error {
		u, err := m.resolve(c)
		if err != nil {
			return err
		}
		if u == nil {
			return NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
		}

		c.Locals(CtxUserKey, u)
		return c.Next()
	}
}

// resolve maps the session cookie to a live user row. Anonymous callers
// (no cookie, bad token, deleted user) come back as nil, not an error.
func (m *SessionMiddleware) resolve(c fiber.Ctx) (*repository.User, error) {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return nil, nil
	}

	claims, err := m.sessions.Validate(token)
	if err != nil {
		return nil, nil
	}

	u, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return &u, nil
}

// UserFromCtx returns the user the session middleware resolved, if any.
func UserFromCtx(c fiber.Ctx) (*repository.User, bool) {
	u, ok := c.Locals(CtxUserKey).(*repository.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
