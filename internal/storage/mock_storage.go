package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MockStorageService implements document storage on the local
// filesystem. This is for development and tests without a cloud bucket;
// uploaded files are served back by the HTTP download handler.
type MockStorageService struct {
	baseURL    string // server URL (e.g. "http://localhost:8080")
	uploadsDir string
}

func NewMockStorageService(baseURL, uploadsDir string) (*MockStorageService, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &MockStorageService{baseURL: baseURL, uploadsDir: uploadsDir}, nil
}

func (m *MockStorageService) Upload(ctx context.Context, bucket, fileName string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(m.uploadsDir, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bucket directory: %w", err)
	}

	fullPath := filepath.Join(dir, fileName)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/api/v1/files/%s/%s", m.baseURL, bucket, fileName), nil
}

func (m *MockStorageService) DeleteFile(ctx context.Context, bucket, fileName string) error {
	err := os.Remove(filepath.Join(m.uploadsDir, bucket, fileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (m *MockStorageService) ReadFile(bucket, fileName string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(m.uploadsDir, bucket, fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
