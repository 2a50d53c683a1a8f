package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"portfolio/api/internal/config"
	"portfolio/api/internal/mail"
	"portfolio/api/internal/middleware"
	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
	"portfolio/api/internal/service"
	"portfolio/api/internal/session"
)

// Stores bundles the pluggable backings picked at boot. Every field is
// an interface so memory, Postgres and Redis implementations mix
// freely.
type Stores struct {
	Users        repository.UserStore
	Sessions     session.Store
	Projects     repository.ContentStore[models.Project]
	Achievements repository.ContentStore[models.Achievement]
	Skills       repository.ContentStore[models.Skill]
}

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	auth   *service.AuthService
	stores Stores
	mailer mail.Mailer

	// nil when the corresponding backing is in-memory
	db    *pgxpool.Pool
	cache *redis.Client
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	stores Stores,
	mailer mail.Mailer,
	db *pgxpool.Pool,
	cache *redis.Client,
) HandlerSet {
	return HandlerSet{
		log:    log,
		cfg:    cfg,
		auth:   service.NewAuthService(stores.Users, stores.Sessions, log),
		stores: stores,
		mailer: mailer,
		db:     db,
		cache:  cache,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.POST("/register", h.RegisterUser)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.POST("/contact", h.Contact)

	authed := router.Group("")
	authed.Use(middleware.Auth(h.stores.Users, h.stores.Sessions))
	authed.GET("/user", h.Me)

	router.GET("/projects", h.ListProjects)
	router.GET("/achievements", h.ListAchievements)
	router.GET("/skills", h.ListSkills)

	admin := router.Group("/admin")
	admin.Use(
		middleware.Auth(h.stores.Users, h.stores.Sessions),
		middleware.RequireAdmin(),
	)
	admin.POST("/projects", h.CreateProject)
	admin.PATCH("/projects/:id", h.UpdateProject)
	admin.DELETE("/projects/:id", h.DeleteProject)

	admin.POST("/achievements", h.CreateAchievement)
	admin.PATCH("/achievements/:id", h.UpdateAchievement)
	admin.DELETE("/achievements/:id", h.DeleteAchievement)

	admin.POST("/skills", h.CreateSkill)
	admin.PATCH("/skills/:id", h.UpdateSkill)
	admin.DELETE("/skills/:id", h.DeleteSkill)
}
