package http

import (
	"net/http"
	"strconv"

	"declarations-backend/internal/service"
)

// AnalyticsHandler exposes the month-window reporting queries.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func monthYear(r *http.Request) (int, int, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}
	return month, year, true
}

func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYear(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "month and year query parameters are required")
		return
	}
	overview, err := h.analytics.Overview(r.Context(), callerFrom(r).UserID(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *AnalyticsHandler) ByDeclarationType(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYear(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "month and year query parameters are required")
		return
	}
	counts, err := h.analytics.ByDeclarationType(r.Context(), callerFrom(r).UserID(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *AnalyticsHandler) ByDay(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYear(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "month and year query parameters are required")
		return
	}
	counts, err := h.analytics.ByDay(r.Context(), callerFrom(r).UserID(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
