package family

import (
	"errors"
	"net/http"

	"libfinder/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/family
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	members, err := h.service.List(r.Context(), userID)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, members, nil)
}

// Create handles POST /api/family
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var cmd CreateCommand
	if err := httpx.DecodeJSON(r, &cmd); err != nil {
		httpx.BadRequest(w, r, "Invalid request body")
		return
	}
	if details := httpx.Validate(cmd); details != nil {
		httpx.BadRequest(w, r, "Validation failed", details...)
		return
	}

	m, err := h.service.Create(r.Context(), userID, cmd)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httpx.BadRequest(w, r, err.Error())
			return
		}
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, m)
}

// Delete handles DELETE /api/family/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	err := h.service.Delete(r.Context(), userID, r.PathValue("id"))
	switch {
	case err == nil:
		httpx.JSONSuccessNoContent(w)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Family member not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, httpx.CodeForbidden, "Not allowed to delete this family member", nil)
	default:
		httpx.InternalError(w, r, err)
	}
}
