// Package storage routes image reads and writes either to the local
// filesystem or, for "s3://bucket/key" paths, to an S3-compatible store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RemoteScheme prefixes paths served by the object store.
const RemoteScheme = "s3://"

var (
	ErrRemoteNotConfigured = errors.New("object storage is not configured")
	ErrInvalidObjectPath   = errors.New("invalid object path")
)

// Backend is a place images can be checked, loaded from and saved to.
type Backend interface {
	Exists(ctx context.Context, path string) (bool, error)
	Load(ctx context.Context, path string) (io.ReadCloser, error)
	Save(ctx context.Context, path string, src io.Reader) error
}

// Router dispatches every call to the local or the remote backend
// depending on the path scheme.
type Router struct {
	local  Backend
	remote Backend
}

// NewRouter creates a Router. remote may be nil, in which case remote paths
// fail with ErrRemoteNotConfigured.
func NewRouter(local, remote Backend) *Router {
	return &Router{local: local, remote: remote}
}

// IsRemote reports whether path points into the object store.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, RemoteScheme)
}

// SplitObjectPath splits "s3://bucket/key" into bucket and key.
func SplitObjectPath(path string) (string, string, error) {
	rest := strings.TrimPrefix(path, RemoteScheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !IsRemote(path) || !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidObjectPath, path)
	}

	return bucket, key, nil
}

// Exists reports whether path refers to an existing readable image file.
func (r *Router) Exists(ctx context.Context, path string) (bool, error) {
	b, err := r.backend(path)
	if err != nil {
		return false, err
	}

	return b.Exists(ctx, path)
}

// Load opens path for reading.
func (r *Router) Load(ctx context.Context, path string) (io.ReadCloser, error) {
	b, err := r.backend(path)
	if err != nil {
		return nil, err
	}

	return b.Load(ctx, path)
}

// Save writes src to path, replacing whatever is there.
func (r *Router) Save(ctx context.Context, path string, src io.Reader) error {
	b, err := r.backend(path)
	if err != nil {
		return err
	}

	return b.Save(ctx, path, src)
}

func (r *Router) backend(path string) (Backend, error) {
	if !IsRemote(path) {
		return r.local, nil
	}
	if r.remote == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrRemoteNotConfigured)
	}

	return r.remote, nil
}
