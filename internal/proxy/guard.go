package proxy

import (
	"net/http"
	"net/url"
	"strings"

	"libfinder/internal/httpx"
)

// RefererGuard rejects requests whose Origin or Referer host is not one of
// allowedHosts or the request's own host. Disabled outside production.
func RefererGuard(enabled bool, allowedHosts []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedHosts))
	for _, h := range allowedHosts {
		allowed[strings.ToLower(h)] = true
	}
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := sourceHost(r)
			if host == "" || !(allowed[host] || host == strings.ToLower(r.Host)) {
				httpx.JSONError(w, r, http.StatusForbidden, httpx.CodeForbidden, "Cross-origin requests are not allowed", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// sourceHost is the host[:port] of Origin, or of Referer when Origin is
// absent.
func sourceHost(r *http.Request) string {
	for _, h := range []string{r.Header.Get("Origin"), r.Header.Get("Referer")} {
		if h == "" {
			continue
		}
		u, err := url.Parse(h)
		if err != nil || u.Host == "" {
			return ""
		}
		return strings.ToLower(u.Host)
	}
	return ""
}
