package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"libfinder/internal/auth"
	"libfinder/internal/availability"
	"libfinder/internal/book"
	"libfinder/internal/cache"
	"libfinder/internal/config"
	"libfinder/internal/contact"
	"libfinder/internal/family"
	"libfinder/internal/geo"
	"libfinder/internal/logger"
	"libfinder/internal/platform/data4library"
	"libfinder/internal/platform/kakao"
	"libfinder/internal/platform/mailer"
	"libfinder/internal/platform/naver"
	"libfinder/internal/proxy"
	"libfinder/internal/ratelimit"
	"libfinder/internal/recommend"
	"libfinder/internal/region"
	"libfinder/internal/stamp"
)

func main() {
	config.LoadEnvFiles()
	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_invalid", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool := mustOpenDB(ctx, cfg.DatabaseDSN)
	defer dbPool.Close()
	checks := []readinessCheck{dbPool.Ping}

	var store cache.Store = cache.NewMemoryStore()
	if rdb := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rdb != nil {
		defer rdb.Close()
		store = cache.NewRedisStore(rdb, "libfinder:")
		checks = append(checks, func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		log.Info("persistent_cache", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		log.Info("persistent_cache", "backend", "memory")
	}

	libraryAPI := data4library.NewClient(data4library.Config{
		BaseURL:    cfg.LibraryAPIBaseURL,
		AuthKey:    cfg.LibraryAPIKey,
		RPS:        cfg.LibraryAPIRPS,
		MaxRetries: cfg.UpstreamRetries,
	})
	searchAPI := naver.NewClient(naver.Config{
		BaseURL:      cfg.NaverBaseURL,
		ClientID:     cfg.NaverClientID,
		ClientSecret: cfg.NaverClientSecret,
		MaxRetries:   cfg.UpstreamRetries,
	})
	geocoder := kakao.NewClient(kakao.Config{
		BaseURL:    cfg.KakaoBaseURL,
		RESTKey:    cfg.KakaoRESTKey,
		MaxRetries: cfg.UpstreamRetries,
	})
	mail := mailer.NewClient(mailer.Config{
		BaseURL:    cfg.MailBaseURL,
		APIKey:     cfg.MailAPIKey,
		From:       cfg.MailFrom,
		MaxRetries: cfg.UpstreamRetries,
	})

	var ipLocator availability.IPLocator
	if cfg.GeoIPPath != "" {
		loc, err := geo.OpenIPLocator(cfg.GeoIPPath)
		if err != nil {
			log.Warn("geoip_disabled", "path", cfg.GeoIPPath, "err", err)
		} else {
			defer loc.Close()
			ipLocator = loc
		}
	}

	mapper := region.NewMapper()
	var locator *region.Locator
	if cfg.KakaoRESTKey != "" {
		locator = region.NewLocator(mapper, geocoder)
	}

	familyService := family.NewService(family.NewPostgresRepo(dbPool, cfg.DBTimeout))

	h := handlers{
		books: book.NewHTTPHandler(book.NewService(searchAPI, libraryAPI, store)),
		availability: availability.NewHTTPHandler(
			availability.NewAggregator(libraryAPI, mapper),
			availability.NewScanner(libraryAPI, mapper.TopLevelCodes()),
			ipLocator,
		),
		regions:   region.NewHTTPHandler(mapper, locator),
		recommend: recommend.NewHTTPHandler(recommend.NewService(libraryAPI, familyService, store)),
		family:    family.NewHTTPHandler(familyService),
		stamps:    stamp.NewHTTPHandler(stamp.NewService(stamp.NewPostgresRepo(dbPool, cfg.DBTimeout))),
		contact:   contact.NewHTTPHandler(contact.NewService(mail, cfg.MailTo)),
		proxy:     proxy.NewHandler(libraryAPI, searchAPI),
	}

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAudience)
	handler := newRouter(cfg, h, verifier, ratelimit.New(), checks...)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown_failed", "err", err)
		}
	}()

	log.Info("server_starting", "addr", cfg.Addr, "env", cfg.Env)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server_error", "err", err)
		os.Exit(1)
	}
	log.Info("server_stopped")
}

func mustOpenDB(ctx context.Context, dsn string) *pgxpool.Pool {
	log := logger.L()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Error("db_pool_failed", "err", err)
		os.Exit(1)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Error("db_ping_failed", "dsn", redactDSN(dsn), "err", err)
		os.Exit(1)
	}
	log.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
