package http

import (
	"net/http"

	"declarations-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. The files handler is nil when cloud
// storage is configured.
func NewRouter(verifier security.TokenVerifier, requests *RequestHandler, analytics *AnalyticsHandler, files *FilesHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(verifier))

	api.HandleFunc("/requests/generated", requests.ListGenerated).Methods(http.MethodGet)
	api.HandleFunc("/requests/mine", requests.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/requests/generate", requests.Generate).Methods(http.MethodPost)
	api.HandleFunc("/requests/status", requests.UpdateStatus).Methods(http.MethodPatch)
	api.HandleFunc("/requests/{declarationId}", requests.Create).Methods(http.MethodPost)
	api.HandleFunc("/requests", requests.ListAll).Methods(http.MethodGet)

	api.HandleFunc("/analytics/overview", analytics.Overview).Methods(http.MethodGet)
	api.HandleFunc("/analytics/by-declaration", analytics.ByDeclarationType).Methods(http.MethodGet)
	api.HandleFunc("/analytics/daily", analytics.ByDay).Methods(http.MethodGet)

	if files != nil {
		// Served without auth so document URLs stay shareable, matching
		// public cloud objects.
		r.HandleFunc("/api/v1/files/{bucket}/{file}", files.Download).Methods(http.MethodGet)
	}

	return r
}
