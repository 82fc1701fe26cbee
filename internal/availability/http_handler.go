package availability

import (
	"errors"
	"net/http"
	"strconv"

	"libfinder/internal/geo"
	"libfinder/internal/httpx"
)

// IPLocator guesses a caller's position from their address.
type IPLocator interface {
	Locate(ip string) (geo.Point, error)
}

type HTTPHandler struct {
	aggregator *Aggregator
	scanner    *Scanner
	ipLocator  IPLocator
}

// NewHTTPHandler wires the availability endpoints. ipLocator may be nil.
func NewHTTPHandler(aggregator *Aggregator, scanner *Scanner, ipLocator IPLocator) *HTTPHandler {
	return &HTTPHandler{aggregator: aggregator, scanner: scanner, ipLocator: ipLocator}
}

// Regional handles GET /api/books/{isbn}/libraries?region=&lat=&lng=
func (h *HTTPHandler) Regional(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := Query{
		ISBN:       r.PathValue("isbn"),
		RegionCode: q.Get("region"),
		Origin:     h.origin(r),
	}

	res, err := h.aggregator.FindLibrariesWithBook(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res.Libraries, map[string]any{"total": res.TotalCount})
}

// Nationwide handles GET /api/books/{isbn}/libraries/nationwide
func (h *HTTPHandler) Nationwide(w http.ResponseWriter, r *http.Request) {
	libs, err := h.scanner.FindLibrariesNationwide(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, libs, map[string]any{"total": len(libs)})
}

// origin reads lat/lng from the query, falling back to an IP lookup.
func (h *HTTPHandler) origin(r *http.Request) *geo.Point {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat == nil && errLng == nil {
		if p := (geo.Point{Lat: lat, Lng: lng}); p.Valid() {
			return &p
		}
	}
	if h.ipLocator == nil {
		return nil
	}
	p, err := h.ipLocator.Locate(httpx.ClientKey(r))
	if err != nil {
		return nil
	}
	return &p
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownRegion):
		httpx.BadRequest(w, r, err.Error())
	default:
		httpx.InternalError(w, r, err)
	}
}
