package routes

import (
	"mos-translator/internal/config"
	"mos-translator/internal/database"
	"mos-translator/internal/delivery/http/handler"
	"mos-translator/internal/delivery/http/middleware"
	"mos-translator/internal/infrastructure/cache"
	"mos-translator/internal/pkg/session"
	"mos-translator/internal/repository"
	ucauth "mos-translator/internal/usecase/auth"
	"mos-translator/internal/usecase/lookup"
	"mos-translator/internal/usecase/savedskills"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg   config.Config
	db    database.DB
	cache *cache.Redis
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis) *Registry {
	return &Registry{cfg: cfg, db: db, cache: c}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	sessionSvc := session.NewHMACService(r.cfg.Session.Secret, r.cfg.Session.TTL)

	userRepo := repository.NewPostgresUserRepository(r.db)
	occupationRepo := repository.NewPostgresOccupationRepository(r.db)
	savedSkillRepo := repository.NewPostgresSavedSkillRepository(r.db)

	authUC := ucauth.NewService(userRepo)
	lookupUC := lookup.NewService(occupationRepo, r.cache, r.cfg.Redis.TTL)
	savedUC := savedskills.NewService(savedSkillRepo)

	sessionMw := middleware.NewSessionMiddleware(sessionSvc, userRepo)

	healthHandler := handler.NewHealthHandler(r.db)
	authHandler := handler.NewAuthHandler(authUC, sessionSvc, r.cfg.Session.TTL)
	mosHandler := handler.NewMOSHandler(lookupUC)
	savedHandler := handler.NewSavedSkillHandler(savedUC)

	healthHandler.RegisterRoutes(app)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	mosHandler.RegisterRoutes(api)

	skills := api.Group("/skills", sessionMw.Require())
	savedHandler.RegisterRoutes(skills)
}
