package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/mindmate-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/mindmate-engine/internal/config"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/services"
)

// @title                       Mindmate Engine API
// @version                     1.0
// @description                 Mood journaling ledger and analytics.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	defer store.Close()

	var rdb *redis.Client
	var denylist services.TokenDenylist = cache.NewMemoryTokenDenylist()
	entryRepo := store.entries

	if cfg.RedisEnabled {
		rdb, err = cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Critical: %v", err)
		}
		defer rdb.Close()

		denylist = cache.NewRedisTokenDenylist(rdb)
		entryRepo = repository.NewCachedMoodEntryRepository(entryRepo, rdb)
		log.Println("[CACHE] Redis connected, cache and denylist enabled.")
	}

	settings := services.LedgerSettings{
		Location: cfg.Location,
		Latency:  cfg.SimulatedLatency,
	}

	authService := services.NewAuthService(store.users)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, store.users, denylist)
	moodService := services.NewMoodService(entryRepo, settings)
	statsService := services.NewStatsService(entryRepo, settings)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService, tokenService),
		MoodHandler:     adapterHTTP.NewMoodHandler(moodService),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService),
		TokenService:    tokenService,
		DB:              store.pinger,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.SimulatedLatency,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Mindmate Engine running on http://localhost:%s (storage: %s, timezone: %s)",
			cfg.Port, cfg.Storage, cfg.Location)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
		return
	}

	log.Println("Server stopped gracefully.")
}

type storage struct {
	users   domain.UserRepository
	entries domain.MoodEntryRepository
	pinger  adapterHTTP.Pinger
	closer  io.Closer
}

func (s *storage) Close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		log.Printf("[DB] Close error: %v", err)
	}
}

func openStorage(cfg *config.Config) (*storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		log.Println("[DB] Connecting to PostgreSQL...")

		db, err := sqlx.Connect(cfg.DBDriver, cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repository.MigratePostgres(ctx, db); err != nil {
			db.Close()
			return nil, err
		}

		log.Println("[DB] PostgreSQL connected and migrated.")
		return &storage{
			users:   repository.NewPostgresUserRepository(db),
			entries: repository.NewPostgresMoodEntryRepository(db),
			pinger:  db,
			closer:  db,
		}, nil

	case config.StorageSQLite:
		database, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}

		log.Printf("[DB] SQLite ready at %s", cfg.SQLitePath)
		return &storage{
			users:   repository.NewSQLiteUserRepository(database),
			entries: repository.NewSQLiteMoodEntryRepository(database),
			pinger:  sqlDB,
			closer:  sqlDB,
		}, nil

	default:
		log.Println("[DB] Using in-memory storage, data is lost on restart.")
		return &storage{
			users:   repository.NewInMemoryUserRepository(),
			entries: repository.NewInMemoryMoodEntryRepository(),
		}, nil
	}
}
