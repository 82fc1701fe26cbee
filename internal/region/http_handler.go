package region

import (
	"errors"
	"net/http"
	"strconv"

	"libfinder/internal/httpx"
)

type HTTPHandler struct {
	mapper  *Mapper
	locator *Locator
}

// NewHTTPHandler wires the region endpoints. locator may be nil when no
// reverse geocoder is configured; coordinate lookups then answer 503.
func NewHTTPHandler(mapper *Mapper, locator *Locator) *HTTPHandler {
	return &HTTPHandler{mapper: mapper, locator: locator}
}

// List handles GET /api/regions
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.mapper.Tree(), nil)
}

// Get handles GET /api/regions/{code}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	match, ok := h.mapper.FindByCode(r.PathValue("code"))
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Region not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, match, nil)
}

// Locate handles GET /api/regions/locate?lat=&lng= and ?region1=&region2=
func (h *HTTPHandler) Locate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if r1 := q.Get("region1"); r1 != "" {
		res, ok := h.mapper.MapFreeText(r1, q.Get("region2"))
		if !ok {
			httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Region not found", nil)
			return
		}
		httpx.JSONSuccess(w, r, res, nil)
		return
	}

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		httpx.BadRequest(w, r, "lat and lng, or region1, are required")
		return
	}
	if h.locator == nil {
		httpx.JSONError(w, r, http.StatusServiceUnavailable, httpx.CodeUpstream, "Reverse geocoding is not configured", nil)
		return
	}

	res, err := h.locator.Locate(r.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, ErrUnknownCode) {
			httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Region not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Reverse geocoding failed", nil)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}
