// Package app wires configuration, storage and the image processor into the
// conversion service shared by the command line and the desktop form.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aliskhannn/grayflip/internal/config"
	"github.com/aliskhannn/grayflip/internal/processor"
	"github.com/aliskhannn/grayflip/internal/service/convert"
	"github.com/aliskhannn/grayflip/internal/storage"
	"github.com/aliskhannn/grayflip/internal/storage/file"
	"github.com/aliskhannn/grayflip/internal/storage/minio"
)

// SetupLogging applies the configured log level to every logger.
func SetupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.Log.ZerologLevel())
}

// NewService builds a conversion service from cfg.
func NewService(cfg *config.Config) (*convert.Service, error) {
	// Remote paths are only routed when an object store is configured.
	var remote storage.Backend
	if cfg.Storage.MinIO.Enabled() {
		m := cfg.Storage.MinIO
		s, err := minio.NewStorage(m.Endpoint, m.AccessKey, m.SecretKey, m.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to object storage: %w", err)
		}
		remote = s
	}

	router := storage.NewRouter(file.NewStorage(), remote)
	p := processor.New(
		processor.WithJPEGQuality(cfg.Output.JPEGQuality),
		processor.WithDefaultFrameDelay(cfg.Animation.DefaultDelay),
	)

	return convert.NewService(router, p), nil
}
