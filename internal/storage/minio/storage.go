package minio

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aliskhannn/grayflip/internal/storage"
)

// Storage provides an S3-compatible storage backend using MinIO.
// Paths have the form "s3://bucket/object/key".
type Storage struct {
	client *minio.Client
}

// NewStorage creates a new Storage instance connected to the specified MinIO server.
func NewStorage(endpoint, accessKey, secretKey string, useSSL bool) (*Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	return &Storage{client: client}, nil
}

// Exists reports whether the object exists.
func (s *Storage) Exists(ctx context.Context, path string) (bool, error) {
	bucket, key, err := storage.SplitObjectPath(path)
	if err != nil {
		return false, err
	}

	_, err = s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" || minio.ToErrorResponse(err).Code == "NoSuchBucket" {
			return false, nil
		}

		return false, fmt.Errorf("failed to stat object %s: %w", path, err)
	}

	return true, nil
}

// Load retrieves the object and returns a reader.
func (s *Storage) Load(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := storage.SplitObjectPath(path)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load file: %w", err)
	}

	return obj, nil
}

// Save uploads src to the object path. If the bucket does not exist, it
// is created first.
func (s *Storage) Save(ctx context.Context, path string, src io.Reader) error {
	bucket, key, err := storage.SplitObjectPath(path)
	if err != nil {
		return err
	}

	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Buffered sources report their length, which avoids a multipart upload.
	size := int64(-1)
	if l, ok := src.(interface{ Len() int }); ok {
		size = int64(l.Len())
	}

	_, err = s.client.PutObject(ctx, bucket, key, src, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
