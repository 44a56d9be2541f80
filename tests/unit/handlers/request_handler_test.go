package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "declarations-backend/internal/api/http"
	"declarations-backend/internal/domain"
	"declarations-backend/internal/security"
	"declarations-backend/internal/service"
)

const testSecret = "handler-test-secret-at-least-32-chars!!"

func newTestRouter(requestSvc *MockRequestService, analyticsSvc *MockAnalyticsService) http.Handler {
	verifier := security.NewTokenVerifier(testSecret)
	return httpapi.NewRouter(verifier, httpapi.NewRequestHandler(requestSvc), httpapi.NewAnalyticsHandler(analyticsSvc), nil)
}

func bearerToken(t *testing.T, userID string, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &security.UserClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestRequestHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		created := &domain.Request{ID: "r-1", UserID: "u-1", DeclarationID: "d-1", Status: domain.RequestStatusPending}
		requestSvc.On("Create", mock.Anything, "u-1", "d-1").Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/d-1", nil)
		req.Header.Set("Authorization", bearerToken(t, "u-1", false))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Request
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "r-1", got.ID)
	})

	t.Run("Conflict On Pending Duplicate", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		requestSvc.On("Create", mock.Anything, "u-1", "d-1").Return(nil, service.ErrPendingRequestExists)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/d-1", nil)
		req.Header.Set("Authorization", bearerToken(t, "u-1", false))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Missing Token", func(t *testing.T) {
		router := newTestRouter(new(MockRequestService), new(MockAnalyticsService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/d-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestHandler_Generate(t *testing.T) {
	t.Run("Forbidden For Non-Admin", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		requestSvc.On("Generate", mock.Anything, "u-1", []string{"r-1"}, "").Return(nil, service.ErrPermissionDenied)

		body, _ := json.Marshal(map[string]any{"request_ids": []string{"r-1"}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/generate", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "u-1", false))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Empty IDs Rejected", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/generate", bytes.NewReader([]byte(`{"request_ids":[]}`)))
		req.Header.Set("Authorization", bearerToken(t, "adm-1", true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		requestSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Returns Generated Summaries", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		generatedAt := time.Now()
		summaries := []domain.RequestSummary{{
			ID:             "r-1",
			Declaration:    "Declaração de Residência",
			Name:           "Ana Souza",
			Status:         domain.RequestStatusProcessing,
			URL:            "https://storage.example.com/declaration/r-1.pdf",
			GenerationDate: &generatedAt,
		}}
		requestSvc.On("Generate", mock.Anything, "adm-1", []string{"r-1", "r-2"}, "dir-1").Return(summaries, nil)

		body, _ := json.Marshal(map[string]any{"request_ids": []string{"r-1", "r-2"}, "director_id": "dir-1"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/generate", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "adm-1", true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.RequestSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "r-1", got[0].ID)
	})
}

func TestRequestHandler_UpdateStatus(t *testing.T) {
	t.Run("Invalid Target Status", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		body := []byte(`{"request_ids":["r-1"],"status":"archived"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/status", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "adm-1", true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		requestSvc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Completed", func(t *testing.T) {
		requestSvc := new(MockRequestService)
		router := newTestRouter(requestSvc, new(MockAnalyticsService))

		summaries := []domain.RequestSummary{{ID: "r-1", Status: domain.RequestStatusCompleted}}
		requestSvc.On("UpdateStatus", mock.Anything, "adm-1", []string{"r-1"}, domain.RequestStatusCompleted).Return(summaries, nil)

		body := []byte(`{"request_ids":["r-1"],"status":"completed"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/status", bytes.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "adm-1", true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAnalyticsHandler_Overview(t *testing.T) {
	t.Run("Missing Month", func(t *testing.T) {
		router := newTestRouter(new(MockRequestService), new(MockAnalyticsService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview?year=2026", nil)
		req.Header.Set("Authorization", bearerToken(t, "adm-1", true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Returns Overview", func(t *testing.T) {
		analyticsSvc := new(MockAnalyticsService)
		router := newTestRouter(new(MockRequestService), analyticsSvc)

		overview := &domain.RequestOverview{TotalRequests: 10, PendingRequests: 6, ApprovalRate: 75, AverageCompletionTime: 14400}
		analyticsSvc.On("Overview", mock.Anything, "adm-1", 3, 2026).Return(overview, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview?month=3&year=2026", nil)
		req.Header.Set("Authorization", bearerToken(t, "adm-1", true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.RequestOverview
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int32(10), got.TotalRequests)
		assert.InDelta(t, 75.0, got.ApprovalRate, 0.001)
	})
}
