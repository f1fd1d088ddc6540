package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"companydocs/domain/apperrors"
	"companydocs/domain/ports"
	"companydocs/pkg/logger"
)

const presignExpiry = 24 * time.Hour

// S3Storage implements StoragePort against any S3-compatible backend
// (MinIO, Cloudflare R2).
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

type S3StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // optional; presigned URLs are issued when empty
}

func NewS3Storage(config S3StorageConfig) (ports.StoragePort, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{Region: config.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("S3 bucket created", "bucket", config.Bucket)
	}

	logger.Info("S3 storage initialized",
		"endpoint", config.Endpoint,
		"bucket", config.Bucket,
		"ssl", config.UseSSL,
	)

	return &S3Storage{
		client:    client,
		bucket:    config.Bucket,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, reader io.Reader, path string, size int64, contentType string) (string, error) {
	path = normalizePath(path)

	_, err := s.client.PutObject(ctx, s.bucket, path, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", &apperrors.StorageError{Op: "put", Path: path, Err: err}
	}

	logger.Debug("Object uploaded", "path", path, "content_type", contentType, "size", size)

	return path, nil
}

func (s *S3Storage) Delete(ctx context.Context, path string) error {
	path = normalizePath(path)

	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return &apperrors.StorageError{Op: "delete", Path: path, Err: err}
	}

	logger.Debug("Object deleted", "path", path)
	return nil
}

func (s *S3Storage) URL(ctx context.Context, path string) (string, error) {
	path = normalizePath(path)

	if s.publicURL != "" {
		return s.publicURL + "/" + path, nil
	}

	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, path, presignExpiry, url.Values{})
	if err != nil {
		return "", &apperrors.StorageError{Op: "url", Path: path, Err: err}
	}

	return presigned.String(), nil
}

func (s *S3Storage) List(ctx context.Context, prefix string) ([]ports.ObjectInfo, error) {
	prefix = normalizePath(prefix)

	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var objects []ports.ObjectInfo
	for obj := range objectsCh {
		if obj.Err != nil {
			return nil, &apperrors.StorageError{Op: "list", Path: prefix, Err: obj.Err}
		}
		objects = append(objects, ports.ObjectInfo{
			Path:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return objects, nil
}

func normalizePath(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "\\", "/")
}
