package filestore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
)

const (
	EnvMinIOAccessKeyID     = "MINIO_ACCESS_KEY_ID"
	EnvMinIOSecretAccessKey = "MINIO_SECRET_ACCESS_KEY"
)

// MinIOService stores submission artifacts. Remove exists for the admission
// controller's compensating rollback.
type MinIOService struct {
	client   *minio.Client
	log      loggerv2.Logger
	endpoint string
	useSSL   bool
}

func NewMinIOService(log loggerv2.Logger, endpoint string, useSSL bool) *MinIOService {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv(EnvMinIOAccessKeyID), os.Getenv(EnvMinIOSecretAccessKey), ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Error("Failed to create MinIO client", logger.Error(err))
		return nil
	}

	return &MinIOService{
		client:   client,
		log:      log,
		endpoint: endpoint,
		useSSL:   useSSL,
	}
}

// PutObject uploads content under objectKey.
func (s *MinIOService) PutObject(ctx context.Context, bucketName, objectKey string, content []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, bucketName, objectKey,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", objectKey, err)
	}
	return nil
}

// RemoveObject deletes the object.
func (s *MinIOService) RemoveObject(ctx context.Context, bucketName, objectKey string) error {
	err := s.client.RemoveObject(ctx, bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to delete object",
			logger.Error(err),
			logger.String("bucketName", bucketName),
			logger.String("objectKey", objectKey),
		)
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}

// GetPresignedDownloadURL returns a temporary download link for an artifact.
func (s *MinIOService) GetPresignedDownloadURL(ctx context.Context, bucketName, objectKey string, durationSeconds int) (string, error) {
	expiration := time.Duration(durationSeconds) * time.Second

	presignedURL, err := s.client.PresignedGetObject(ctx, bucketName, objectKey, expiration, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	return presignedURL.String(), nil
}
