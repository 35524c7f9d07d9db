package assets

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStore keeps uploaded assets in an S3-compatible bucket. It serves
// the same role as DiskStore for deployments that cannot rely on local
// disk surviving restarts.
type MinioStore struct {
	logs   *zap.SugaredLogger
	client *minio.Client
	bucket string
}

func NewMinioStore(logger *zap.SugaredLogger, endpoint, accessKey, secretKey, bucket string, secure bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket does not exist: %s", bucket)
	}

	return &MinioStore{
		logs:   logger,
		client: client,
		bucket: bucket,
	}, nil
}

func (s *MinioStore) Store(ctx context.Context, content io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), SanitizeFilename(originalName))

	_, err := s.client.PutObject(ctx, s.bucket, name, content, -1, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return name, nil
}

func (s *MinioStore) Delete(ctx context.Context, name string) {
	if !validName(name) {
		return
	}
	err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
	if err != nil {
		s.logs.Warnw("failed to delete asset", "asset", name, "error", err)
	}
}

func (s *MinioStore) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, ErrNotFound
	}

	object, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}

	// GetObject is lazy; Stat surfaces a missing key.
	if _, err := object.Stat(); err != nil {
		object.Close()
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat object: %w", err)
	}

	return object, nil
}
