package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/service"

	"github.com/gorilla/mux"
)

// RequestHandler exposes the request lifecycle operations over HTTP.
type RequestHandler struct {
	requests service.RequestService
}

func NewRequestHandler(requests service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type generateRequest struct {
	RequestIDs []string `json:"request_ids"`
	DirectorID string   `json:"director_id,omitempty"`
}

type updateStatusRequest struct {
	RequestIDs []string             `json:"request_ids"`
	Status     domain.RequestStatus `json:"status"`
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	declarationID := mux.Vars(r)["declarationId"]
	req, err := h.requests.Create(r.Context(), callerFrom(r).UserID(), declarationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.requests.ListAll(r.Context(), callerFrom(r).UserID())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *RequestHandler) ListGenerated(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.requests.ListGenerated(r.Context(), callerFrom(r).UserID())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	views, err := h.requests.ListMine(r.Context(), callerFrom(r).UserID())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *RequestHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.RequestIDs) == 0 {
		writeError(w, http.StatusBadRequest, "request_ids is required")
		return
	}

	summaries, err := h.requests.Generate(r.Context(), callerFrom(r).UserID(), body.RequestIDs, body.DirectorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.RequestIDs) == 0 {
		writeError(w, http.StatusBadRequest, "request_ids is required")
		return
	}
	switch body.Status {
	case domain.RequestStatusProcessing, domain.RequestStatusCompleted, domain.RequestStatusRejected:
	default:
		writeError(w, http.StatusBadRequest, "invalid target status")
		return
	}

	summaries, err := h.requests.UpdateStatus(r.Context(), callerFrom(r).UserID(), body.RequestIDs, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPendingRequestExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
