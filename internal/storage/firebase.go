package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseStorageService stores documents in the project's Cloud
// Storage bucket. The interface's bucket argument becomes an object
// prefix inside the single configured GCS bucket.
type FirebaseStorageService struct {
	bucketName string
	bucket     *gcs.BucketHandle
}

func NewFirebaseStorageService(ctx context.Context, bucketName, credentialsFile string) (*FirebaseStorageService, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketName, err)
	}

	return &FirebaseStorageService{bucketName: bucketName, bucket: bucket}, nil
}

func (s *FirebaseStorageService) Upload(ctx context.Context, bucket, fileName string, data []byte, contentType string) (string, error) {
	key := path.Join(bucket, fileName)
	obj := s.bucket.Object(key)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("failed to publish object %s: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}

func (s *FirebaseStorageService) DeleteFile(ctx context.Context, bucket, fileName string) error {
	return s.bucket.Object(path.Join(bucket, fileName)).Delete(ctx)
}

// ReadFile is only meaningful for the mock backend; cloud objects are
// fetched via their public URL.
func (s *FirebaseStorageService) ReadFile(bucket, fileName string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("direct reads are not supported for cloud storage")
}
