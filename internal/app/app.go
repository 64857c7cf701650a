package app

import (
	"net/http"

	"vims-go/internal/config"
	"vims-go/internal/db"
	deathdomain "vims-go/internal/domain/death"
	disabilitydomain "vims-go/internal/domain/disability"
	householddomain "vims-go/internal/domain/household"
	lookupdomain "vims-go/internal/domain/lookup"
	persondomain "vims-go/internal/domain/person"
	reportdomain "vims-go/internal/domain/report"
	"vims-go/internal/repository/inmemory"
	deathpg "vims-go/internal/repository/postgres/death"
	disabilitypg "vims-go/internal/repository/postgres/disability"
	householdpg "vims-go/internal/repository/postgres/household"
	lookuppg "vims-go/internal/repository/postgres/lookup"
	personpg "vims-go/internal/repository/postgres/person"
	reportpg "vims-go/internal/repository/postgres/report"
	rediscache "vims-go/internal/repository/redis"
	"vims-go/internal/transport/httpserver"
	"vims-go/internal/transport/httpserver/handler"
	"vims-go/pkg/logger"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	redis      *redis.Client
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load()

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	var lookupCache lookupdomain.Cache = inmemory.NewInMemoryLookupCache()
	if cfg.Redis.Addr != "" {
		log.Info("app: using redis lookup cache", "addr", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lookupCache = rediscache.NewLookupCache(redisClient)
	}

	genders := reportdomain.GenderLabels{
		Male:   cfg.Genders.MaleLabel,
		Female: cfg.Genders.FemaleLabel,
	}

	persons := persondomain.NewService(personpg.NewPostgres(dbConn))
	households := householddomain.NewService(householdpg.NewPostgres(dbConn))
	lookups := lookupdomain.NewServiceWithCache(lookuppg.NewPostgres(dbConn), lookupCache, cfg.Lookup.CacheTTL)
	deaths := deathdomain.NewService(deathpg.NewPostgres(dbConn))
	disabilities := disabilitydomain.NewService(disabilitypg.NewPostgres(dbConn))
	reports := reportdomain.NewService(reportpg.NewPostgres(dbConn), genders)

	log.Info("app: initializing router")
	handlers := handler.New(log, persons, households, lookups, deaths, disabilities, reports)
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		redis:      redisClient,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return err
		}
	}

	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
