package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mos-translator/internal/repository"
)

var (
	ErrMissingField       = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUnknownUser        = errors.New("unknown username")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (repository.User, error)
}

type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// Register hashes the password with bcrypt before it ever reaches the
// store; the plaintext is never persisted. Duplicate usernames surface
// as the store's unique-constraint violation, not a pre-check.
func (s *Service) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, ErrInternal
	}

	id, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, ErrUsernameTaken
		}
		return 0, ErrInternal
	}
	return id, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (repository.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return repository.User{}, ErrMissingField
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUnknownUser
		}
		return repository.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return repository.User{}, ErrInvalidCredentials
	}

	return u, nil
}
