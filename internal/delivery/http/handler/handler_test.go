package handler

import (
	"context"
	"log"
	"time"

	"mos-translator/internal/delivery/http/middleware"
	"mos-translator/internal/pkg/session"
	"mos-translator/internal/repository"
	ucauth "mos-translator/internal/usecase/auth"
	"mos-translator/internal/usecase/lookup"
	"mos-translator/internal/usecase/savedskills"

	"github.com/gofiber/fiber/v3"
)

// In-memory repositories backing the handler tests. They satisfy the
// same interfaces the Postgres implementations do.

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

type fakeOccupationRepo struct {
	skills map[string]repository.OccupationSkills
	list   []repository.Occupation
}

func (f *fakeOccupationRepo) GetSkillsByCode(_ context.Context, code string) (repository.OccupationSkills, error) {
	s, ok := f.skills[code]
	if !ok {
		return repository.OccupationSkills{}, repository.ErrOccupationNotFound
	}
	return s, nil
}

func (f *fakeOccupationRepo) ListOccupations(_ context.Context) ([]repository.Occupation, error) {
	return f.list, nil
}

type fakeSavedSkillRepo struct {
	rows   []repository.SavedSkill
	nextID int64
}

func newFakeSavedSkillRepo() *fakeSavedSkillRepo {
	return &fakeSavedSkillRepo{nextID: 1}
}

func (f *fakeSavedSkillRepo) FindByUserID(_ context.Context, userID int64) ([]repository.SavedSkill, error) {
	out := make([]repository.SavedSkill, 0)
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSavedSkillRepo) Create(_ context.Context, userID int64, desc string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.rows = append(f.rows, repository.SavedSkill{ID: id, UserID: userID, SkillDescription: desc})
	return id, nil
}

func (f *fakeSavedSkillRepo) Delete(_ context.Context, id int64, userID int64) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return nil
}

type testEnv struct {
	app         *fiber.App
	users       *fakeUserRepo
	saved       *fakeSavedSkillRepo
	occupations *fakeOccupationRepo
}

func seededOccupations() *fakeOccupationRepo {
	return &fakeOccupationRepo{
		skills: map[string]repository.OccupationSkills{
			"11B": {
				Title: "Infantryman",
				Skills: []string{
					"Operated and maintained a variety of small arms and heavy weapons, ensuring operational readiness for missions.",
					"Led fire teams in tactical operations, coordinating movement and communication under high-pressure conditions.",
					"Conducted reconnaissance and surveillance operations, gathering and reporting critical intelligence.",
					"Trained and mentored junior team members in weapons handling, land navigation, and field tactics.",
				},
			},
		},
		list: []repository.Occupation{
			{ID: 3, MOSCode: "68W", Title: "Combat Medic Specialist"},
			{ID: 1, MOSCode: "11B", Title: "Infantryman"},
		},
	}
}

// newTestEnv wires the full route surface the way routes.Registry does,
// with in-memory repositories behind it.
func newTestEnv() testEnv {
	users := newFakeUserRepo()
	saved := newFakeSavedSkillRepo()
	occupations := seededOccupations()

	sessionSvc := session.NewHMACService("handler-test-secret", time.Hour)
	sessionMw := middleware.NewSessionMiddleware(sessionSvc, users)

	authHandler := NewAuthHandler(ucauth.NewService(users), sessionSvc, time.Hour)
	mosHandler := NewMOSHandler(lookup.NewService(occupations, nil, 0))
	savedHandler := NewSavedSkillHandler(savedskills.NewService(saved))

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(nopWriter{}, "", 0)).Middleware())

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	mosHandler.RegisterRoutes(api)

	skills := api.Group("/skills", sessionMw.Require())
	savedHandler.RegisterRoutes(skills)

	return testEnv{app: app, users: users, saved: saved, occupations: occupations}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
