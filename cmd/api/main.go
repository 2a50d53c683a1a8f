package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"portfolio/api/internal/cache"
	"portfolio/api/internal/config"
	"portfolio/api/internal/database"
	"portfolio/api/internal/handlers"
	"portfolio/api/internal/jobs"
	"portfolio/api/internal/log"
	"portfolio/api/internal/mail"
	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
	"portfolio/api/internal/repository/memory"
	"portfolio/api/internal/repository/postgres"
	"portfolio/api/internal/security"
	"portfolio/api/internal/server"
	"portfolio/api/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	var dbPool *pgxpool.Pool
	stores := handlers.Stores{
		Users:        memory.NewUserStore(),
		Projects:     memory.NewCollection[models.Project](),
		Achievements: memory.NewCollection[models.Achievement](),
		Skills:       memory.NewCollection[models.Skill](),
	}

	if cfg.Postgres.DSN != "" {
		if err := database.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
		dbPool, err = database.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect postgres")
		}
		stores.Users = postgres.NewUserStore(dbPool)
		stores.Projects = postgres.NewProjects(dbPool)
		stores.Achievements = postgres.NewAchievements(dbPool)
		stores.Skills = postgres.NewSkills(dbPool)
		logger.Info().Msg("using postgres content backing")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		stores.Sessions = session.NewRedisStore(redisClient, cfg.Session.IdleTimeout)
		logger.Info().Msg("using redis session backing")
	} else {
		stores.Sessions = session.NewMemoryStore(cfg.Session.IdleTimeout)
	}

	if err := seedAdmin(ctx, cfg.Admin, stores.Users); err != nil {
		logger.Fatal().Err(err).Msg("admin seed failed")
	}

	var mailer mail.Mailer = mail.NewLogMailer(logger)
	if cfg.Mail.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.Mail)
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, stores, mailer, dbPool, redisClient)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	sweeper := jobs.NewScheduler(stores.Sessions, cfg.Session.SweepSchedule, logger)
	if err := sweeper.Start(); err != nil {
		logger.Error().Err(err).Msg("session sweeper start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, sweeper, dbPool, redisClient)
}

// seedAdmin provisions the one admin account from config. Promotion has
// no HTTP surface; this boot-time path is the only way the flag is set.
func seedAdmin(ctx context.Context, cfg config.AdminConfig, users repository.UserStore) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	hash, err := security.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	user, err := users.Create(ctx, cfg.Username, hash)
	if errors.Is(err, repository.ErrDuplicateUsername) {
		user, err = users.GetByUsername(ctx, cfg.Username)
	}
	if err != nil {
		return err
	}

	return users.Promote(ctx, user.ID)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, sweeper *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	sweeper.Stop()

	if db != nil {
		db.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
