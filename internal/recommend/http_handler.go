package recommend

import (
	"errors"
	"net/http"
	"strconv"

	"libfinder/internal/family"
	"libfinder/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /api/recommendations?age=|child_id=&size=
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	size, _ := strconv.Atoi(query.Get("size"))

	var (
		res Result
		err error
	)
	if childID := query.Get("child_id"); childID != "" {
		userID := httpx.UserIDFrom(r)
		if userID == "" {
			httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Authentication required", nil)
			return
		}
		res, err = h.service.ForChild(r.Context(), userID, childID, size)
	} else {
		age, perr := strconv.Atoi(query.Get("age"))
		if perr != nil {
			httpx.BadRequest(w, r, "age or child_id is required", httpx.ErrorDetail{Field: "age", Message: "must be an integer"})
			return
		}
		res, err = h.service.ForAge(r.Context(), age, size)
	}

	switch {
	case err == nil:
		httpx.JSONSuccess(w, r, res, nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoBirthYear):
		httpx.BadRequest(w, r, err.Error())
	case errors.Is(err, family.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Family member not found", nil)
	case errors.Is(err, family.ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, httpx.CodeForbidden, "Not allowed to view this family member", nil)
	default:
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Recommendations are unavailable", nil)
	}
}
