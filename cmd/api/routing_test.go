package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libfinder/internal/auth"
	"libfinder/internal/availability"
	"libfinder/internal/book"
	"libfinder/internal/cache"
	"libfinder/internal/config"
	"libfinder/internal/contact"
	"libfinder/internal/family"
	"libfinder/internal/platform/data4library"
	"libfinder/internal/platform/mailer"
	"libfinder/internal/platform/naver"
	"libfinder/internal/proxy"
	"libfinder/internal/ratelimit"
	"libfinder/internal/recommend"
	"libfinder/internal/region"
	"libfinder/internal/stamp"
	"libfinder/internal/testutil"
)

func newTestRouter(t *testing.T, checks ...readinessCheck) http.Handler {
	t.Helper()
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"numFound":0,"libs":[]}}`))
	}))
	t.Cleanup(upstreamSrv.Close)

	cfg := config.Config{
		Env:                 "development",
		AllowedOrigins:      []string{"http://localhost:3000"},
		ProxyRateLimit:      100,
		BookSearchRateLimit: 200,
		BlogSearchRateLimit: 50,
		ContactRateLimit:    5,
		NationwideRateLimit: 2,
	}

	libraryAPI := data4library.NewClient(data4library.Config{BaseURL: upstreamSrv.URL, AuthKey: "k", RPS: 100})
	searchAPI := naver.NewClient(naver.Config{BaseURL: upstreamSrv.URL})
	store := cache.NewMemoryStore()
	mapper := region.NewMapper()
	familyService := family.NewService(nil)

	h := handlers{
		books: book.NewHTTPHandler(book.NewService(searchAPI, libraryAPI, store)),
		availability: availability.NewHTTPHandler(
			availability.NewAggregator(libraryAPI, mapper),
			availability.NewScanner(libraryAPI, mapper.TopLevelCodes()),
			nil,
		),
		regions:   region.NewHTTPHandler(mapper, nil),
		recommend: recommend.NewHTTPHandler(recommend.NewService(libraryAPI, familyService, store)),
		family:    family.NewHTTPHandler(familyService),
		stamps:    stamp.NewHTTPHandler(stamp.NewService(nil)),
		contact:   contact.NewHTTPHandler(contact.NewService(mailer.NewClient(mailer.Config{}), "ops@example.com")),
		proxy:     proxy.NewHandler(libraryAPI, searchAPI),
	}
	return newRouter(cfg, h, auth.NewVerifier(testutil.TestSecret, ""), ratelimit.New(), checks...)
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = serve(router, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ReadinessFailure(t *testing.T) {
	router := newTestRouter(t, func(context.Context) error { return errors.New("db down") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/api/family"},
		{http.MethodPost, "/api/family"},
		{http.MethodDelete, "/api/family/abc"},
		{http.MethodGet, "/api/stamps"},
		{http.MethodPost, "/api/stamps/sync"},
		{http.MethodDelete, "/api/stamps/9788936434120"},
	} {
		w := serve(router, httptest.NewRequest(rt.method, rt.path, nil))
		rec := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", rt.method, rt.path)
		assert.Equal(t, "UNAUTHORIZED", rec.ErrorCode(), "%s %s", rt.method, rt.path)
	}
}

func TestRouter_Regions(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/regions/11", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/regions/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/api/regions/locate?lat=37.5&lng=127.0", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodPost, "/api/regions", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_LibraryProxy(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/library/libSrchByBook?isbn=9788936434120", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "numFound")
	assert.Equal(t, "99", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRouter_RegionalAvailabilityEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/books/9788936434120/libraries?region=11", nil))
	rec := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, rec.Body["data"])
}

func TestRouter_NationwideRateLimited(t *testing.T) {
	router := newTestRouter(t)

	for range 2 {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/books/9788936434120/libraries/nationwide", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/books/9788936434120/libraries/nationwide", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRouter_ContactWithoutMailer(t *testing.T) {
	router := newTestRouter(t)

	r := testutil.NewRequest(http.MethodPost, "/api/contact", map[string]string{
		"name": "김독자", "email": "reader@example.com", "message": "hello there",
	})
	w := serve(router, r)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
