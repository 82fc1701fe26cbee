package book

import (
	"errors"
	"net/http"
	"strconv"

	"libfinder/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Search handles GET /api/books
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	res, err := h.service.Search(r.Context(), Query{Q: query.Get("q"), Page: page, PageSize: pageSize})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httpx.BadRequest(w, r, "Query parameter q is required", httpx.ErrorDetail{Field: "q", Message: "required"})
			return
		}
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Book search is unavailable", nil)
		return
	}

	httpx.JSONSuccess(w, r, res.Books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       res.Total,
		"total_pages": (res.Total + pageSize - 1) / pageSize,
	})
}

// Detail handles GET /api/books/{isbn}
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	isbn := NormalizeISBN(r.PathValue("isbn"))
	if isbn == "" {
		http.NotFound(w, r)
		return
	}

	b, err := h.service.Detail(r.Context(), isbn)
	switch {
	case err == nil:
		httpx.JSONSuccess(w, r, b, nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "ISBN not found", nil)
	case errors.Is(err, ErrInvalidInput):
		httpx.BadRequest(w, r, err.Error())
	default:
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Book detail is unavailable", nil)
	}
}

// Reviews handles GET /api/books/{isbn}/reviews
func (h *HTTPHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reviews, err := h.service.Reviews(r.Context(), r.PathValue("isbn"), limit)
	switch {
	case err == nil:
		httpx.JSONSuccess(w, r, reviews, map[string]any{"total": len(reviews)})
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "ISBN not found", nil)
	case errors.Is(err, ErrInvalidInput):
		httpx.BadRequest(w, r, err.Error())
	default:
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Reviews are unavailable", nil)
	}
}
