package contact

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

// Submit handles POST /api/contact
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r, "Invalid request body")
		return
	}
	if details := httpx.Validate(req); details != nil {
		httpx.BadRequest(w, r, "Validation failed", details...)
		return
	}

	err := h.service.Submit(r.Context(), req)
	switch {
	case err == nil:
		httpx.JSONSuccess(w, r, map[string]bool{"sent": true}, nil)
	case errors.Is(err, ErrInvalidInput):
		httpx.BadRequest(w, r, err.Error())
	default:
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Message could not be sent", nil)
	}
}
