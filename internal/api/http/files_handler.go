package http

import (
	"io"
	"net/http"

	"declarations-backend/internal/storage"

	"github.com/gorilla/mux"
)

// FilesHandler serves documents back from mock storage. Cloud storage
// deployments never register these routes; objects are public there.
type FilesHandler struct {
	mockStorage *storage.MockStorageService
}

func NewFilesHandler(mockStorage *storage.MockStorageService) *FilesHandler {
	return &FilesHandler{mockStorage: mockStorage}
}

func (h *FilesHandler) Download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	file, err := h.mockStorage.ReadFile(vars["bucket"], vars["file"])
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	_, _ = io.Copy(w, file)
}
