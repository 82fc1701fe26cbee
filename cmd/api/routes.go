package main

import (
	"context"
	"net/http"
	"time"

	"libfinder/internal/auth"
	"libfinder/internal/availability"
	"libfinder/internal/book"
	"libfinder/internal/config"
	"libfinder/internal/contact"
	"libfinder/internal/family"
	"libfinder/internal/httpx"
	"libfinder/internal/metrics"
	"libfinder/internal/proxy"
	"libfinder/internal/ratelimit"
	"libfinder/internal/recommend"
	"libfinder/internal/region"
	"libfinder/internal/stamp"
)

const maxRequestBytes = 1 << 20

type handlers struct {
	books        *book.HTTPHandler
	availability *availability.HTTPHandler
	regions      *region.HTTPHandler
	recommend    *recommend.HTTPHandler
	family       *family.HTTPHandler
	stamps       *stamp.HTTPHandler
	contact      *contact.HTTPHandler
	proxy        *proxy.Handler
}

// readinessCheck reports whether a dependency can serve traffic.
type readinessCheck func(ctx context.Context) error

func newRouter(cfg config.Config, h handlers, verifier *auth.Verifier, limiter *ratelimit.Limiter, checks ...readinessCheck) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", metrics.Handler())

	// Same-origin proxies.
	guard := proxy.RefererGuard(cfg.IsProduction(), cfg.AllowedHosts)
	router.Handle("GET /api/library/{path...}", httpx.Chain(http.HandlerFunc(h.proxy.Library),
		guard, httpx.RateLimit(limiter, "library", cfg.ProxyRateLimit, time.Minute)))
	router.Handle("GET /api/search/book", httpx.Chain(http.HandlerFunc(h.proxy.BookSearch),
		guard, httpx.RateLimit(limiter, "search_book", cfg.BookSearchRateLimit, time.Minute)))
	router.Handle("GET /api/search/blog", httpx.Chain(http.HandlerFunc(h.proxy.BlogSearch),
		guard, httpx.RateLimit(limiter, "search_blog", cfg.BlogSearchRateLimit, time.Minute)))

	router.HandleFunc("GET /api/books", h.books.Search)
	router.HandleFunc("GET /api/books/{isbn}", h.books.Detail)
	router.HandleFunc("GET /api/books/{isbn}/reviews", h.books.Reviews)
	router.HandleFunc("GET /api/books/{isbn}/libraries", h.availability.Regional)
	router.Handle("GET /api/books/{isbn}/libraries/nationwide", httpx.RateLimit(limiter, "nationwide", cfg.NationwideRateLimit, time.Minute)(http.HandlerFunc(h.availability.Nationwide)))

	router.HandleFunc("GET /api/regions", h.regions.List)
	router.HandleFunc("GET /api/regions/locate", h.regions.Locate)
	router.HandleFunc("GET /api/regions/{code}", h.regions.Get)

	router.Handle("GET /api/recommendations", httpx.OptionalAuthMiddleware(verifier)(http.HandlerFunc(h.recommend.Get)))

	protected := httpx.AuthMiddleware(verifier)
	router.Handle("GET /api/family", protected(http.HandlerFunc(h.family.List)))
	router.Handle("POST /api/family", protected(http.HandlerFunc(h.family.Create)))
	router.Handle("DELETE /api/family/{id}", protected(http.HandlerFunc(h.family.Delete)))
	router.Handle("GET /api/stamps", protected(http.HandlerFunc(h.stamps.List)))
	router.Handle("POST /api/stamps/sync", protected(http.HandlerFunc(h.stamps.Sync)))
	router.Handle("DELETE /api/stamps/{isbn}", protected(http.HandlerFunc(h.stamps.Delete)))

	router.Handle("POST /api/contact", httpx.RateLimit(limiter, "contact", cfg.ContactRateLimit, time.Hour)(http.HandlerFunc(h.contact.Submit)))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.IsProduction()),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	)
}
