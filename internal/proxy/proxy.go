// Package proxy exposes same-origin pass-through endpoints for the
// library open-data API and the search API, so browser code never sees
// the server-held keys.
package proxy

import (
	"context"
	"net/http"
	"net/url"
	"regexp"

	"libfinder/internal/httpx"
	"libfinder/internal/logger"
	"libfinder/internal/platform/upstream"
)

const edgeCacheControl = "public, s-maxage=86400, stale-while-revalidate=3600"

var endpointPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

type LibraryForwarder interface {
	Forward(ctx context.Context, endpoint string, query url.Values) (upstream.Response, error)
}

type SearchForwarder interface {
	Raw(ctx context.Context, kind string, params url.Values) (upstream.Response, error)
}

type Handler struct {
	library LibraryForwarder
	search  SearchForwarder
}

func NewHandler(library LibraryForwarder, search SearchForwarder) *Handler {
	return &Handler{library: library, search: search}
}

// Library handles GET /api/library/{path...}
func (h *Handler) Library(w http.ResponseWriter, r *http.Request) {
	endpoint := r.PathValue("path")
	if !endpointPattern.MatchString(endpoint) {
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Unknown endpoint", nil)
		return
	}

	resp, err := h.library.Forward(r.Context(), endpoint, r.URL.Query())
	if err != nil {
		logger.L().Warn("proxy_upstream_failed", "api", "library", "endpoint", endpoint, "err", err)
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Upstream request failed", nil)
		return
	}
	writeUpstream(w, resp)
}

// BookSearch handles GET /api/search/book
func (h *Handler) BookSearch(w http.ResponseWriter, r *http.Request) {
	h.searchKind(w, r, "book")
}

// BlogSearch handles GET /api/search/blog
func (h *Handler) BlogSearch(w http.ResponseWriter, r *http.Request) {
	h.searchKind(w, r, "blog")
}

func (h *Handler) searchKind(w http.ResponseWriter, r *http.Request, kind string) {
	q := r.URL.Query()
	if q.Get("query") == "" {
		httpx.BadRequest(w, r, "query is required", httpx.ErrorDetail{Field: "query", Message: "required"})
		return
	}
	params := url.Values{}
	for _, k := range []string{"query", "display", "start", "sort"} {
		if v := q.Get(k); v != "" {
			params.Set(k, v)
		}
	}

	resp, err := h.search.Raw(r.Context(), kind, params)
	if err != nil {
		logger.L().Warn("proxy_upstream_failed", "api", "search", "endpoint", kind, "err", err)
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Upstream request failed", nil)
		return
	}
	writeUpstream(w, resp)
}

// writeUpstream copies the upstream answer. Only 200s are edge-cacheable.
func writeUpstream(w http.ResponseWriter, resp upstream.Response) {
	ct := resp.ContentType
	if ct == "" {
		ct = "application/json; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	if resp.Status == http.StatusOK {
		w.Header().Set("Cache-Control", edgeCacheControl)
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
