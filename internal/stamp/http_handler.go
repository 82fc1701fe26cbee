package stamp

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

// List handles GET /api/stamps
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	stamps, err := h.service.List(r.Context(), userID)
	if err != nil {
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, stamps, map[string]any{"total": len(stamps)})
}

// Sync handles POST /api/stamps/sync
func (h *HTTPHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req SyncRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r, "Invalid request body")
		return
	}
	if details := httpx.Validate(req); details != nil {
		httpx.BadRequest(w, r, "Validation failed", details...)
		return
	}

	stamps, err := h.service.Sync(r.Context(), userID, req.Stamps)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httpx.BadRequest(w, r, err.Error())
			return
		}
		httpx.InternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, stamps, map[string]any{"total": len(stamps)})
}

// Delete handles DELETE /api/stamps/{isbn}?child_id=
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	err := h.service.Delete(r.Context(), userID, r.PathValue("isbn"), r.URL.Query().Get("child_id"))
	switch {
	case err == nil:
		httpx.JSONSuccessNoContent(w)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Stamp not found", nil)
	case errors.Is(err, ErrInvalidInput):
		httpx.BadRequest(w, r, err.Error())
	default:
		httpx.InternalError(w, r, err)
	}
}
