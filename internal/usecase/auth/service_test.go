package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"mos-translator/internal/repository"
)

type fakeUserRepo struct {
	byUsername map[string]repository.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]repository.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, username, passwordHash string) (int64, error) {
	if _, ok := f.byUsername[username]; ok {
		return 0, repository.ErrDuplicateUsername
	}
	id := f.nextID
	f.nextID++
	f.byUsername[username] = repository.User{ID: id, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (repository.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (repository.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	cases := []struct{ username, password string }{
		{"", ""},
		{"soldier", ""},
		{"", "hunter2hunter2"},
		{"   ", "hunter2hunter2"},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.username, tc.password); !errors.Is(err, ErrMissingField) {
			t.Fatalf("Register(%q, %q): expected ErrMissingField, got %v", tc.username, tc.password, err)
		}
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), "soldier", "hunter2hunter2"); err != nil {
		t.Fatalf("first register: unexpected err: %v", err)
	}
	if _, err := svc.Register(context.Background(), "soldier", "another-password"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("second register: expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), "soldier", "hunter2hunter2"); err != nil {
		t.Fatalf("register: unexpected err: %v", err)
	}

	stored := repo.byUsername["soldier"].PasswordHash
	if stored == "hunter2hunter2" {
		t.Fatalf("password stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	id, err := svc.Register(context.Background(), "soldier", "hunter2hunter2")
	if err != nil {
		t.Fatalf("register: unexpected err: %v", err)
	}

	u, err := svc.Login(context.Background(), "soldier", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: unexpected err: %v", err)
	}
	if u.ID != id {
		t.Fatalf("login returned id %d, registered %d", u.ID, id)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), "soldier", "hunter2hunter2"); err != nil {
		t.Fatalf("register: unexpected err: %v", err)
	}
	if _, err := svc.Login(context.Background(), "soldier", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Login(context.Background(), "nobody", "whatever"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}
