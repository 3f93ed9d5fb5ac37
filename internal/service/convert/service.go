package convert

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/grayflip/internal/model"
	"github.com/aliskhannn/grayflip/internal/processor"
)

// Option customizes a single Convert call.
type Option func(*runOptions)

type runOptions struct {
	onClassified func(model.Classification)
}

// WithProgress registers fn to be called once the source has been decoded
// and classified, before any transform runs.
func WithProgress(fn func(model.Classification)) Option {
	return func(o *runOptions) {
		o.onClassified = fn
	}
}

// Service runs the decode-transform-encode pipeline for one request.
// Both the command line and the desktop form go through it.
type Service struct {
	fileStorage fileStorage
	processor   imageProcessor
}

// NewService creates a new Service with the given storage and processor.
func NewService(fs fileStorage, p imageProcessor) *Service {
	return &Service{fileStorage: fs, processor: p}
}

// Validate checks req before anything is decoded: the source must be an
// existing readable file, then at least one operation must be requested.
func (s *Service) Validate(ctx context.Context, req model.ProcessingRequest) error {
	if strings.TrimSpace(req.SourcePath) == "" {
		return fmt.Errorf("%w: no source selected", ErrFileNotFound)
	}

	exists, err := s.fileStorage.Exists(ctx, req.SourcePath)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrFileNotFound, req.SourcePath)
	}

	if !req.HasOperation() {
		return ErrNoOperation
	}

	return nil
}

// Convert validates req, transforms the source and writes the result to the
// explicit or derived destination. An existing destination is overwritten.
func (s *Service) Convert(ctx context.Context, req model.ProcessingRequest, opts ...Option) (model.Result, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := s.Validate(ctx, req); err != nil {
		return model.Result{}, err
	}

	id := uuid.New()
	dst := req.Destination()

	zlog.Logger.Info().
		Str("run_id", id.String()).
		Str("source", req.SourcePath).
		Str("destination", dst).
		Strs("operations", req.Operations()).
		Msg("starting conversion")

	// Load the original image from storage.
	srcReader, err := s.fileStorage.Load(ctx, req.SourcePath)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to load source image: %w", err)
	}
	defer srcReader.Close()

	src, err := s.processor.Decode(ctx, srcReader)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("run_id", id.String()).Msg("failed to decode source")
		return model.Result{}, err
	}

	cls := src.Classification()
	if o.onClassified != nil {
		o.onClassified(cls)
	}

	zlog.Logger.Debug().
		Str("run_id", id.String()).
		Str("format", cls.Format).
		Bool("animated", cls.Animated).
		Int("frames", cls.Frames).
		Msg("source classified")

	// Encode into a buffer first so a failed encode leaves no file behind.
	buf := bytes.NewBuffer(nil)
	format, err := s.processor.Encode(ctx, src, processor.Transform{
		Grayscale:      req.Grayscale,
		FlipHorizontal: req.FlipHorizontal,
	}, buf)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("run_id", id.String()).Msg("failed to transform image")
		return model.Result{}, err
	}

	if err := s.fileStorage.Save(ctx, dst, buf); err != nil {
		return model.Result{}, fmt.Errorf("failed to save processed image: %w", err)
	}

	zlog.Logger.Info().
		Str("run_id", id.String()).
		Str("output_format", format.String()).
		Str("destination", dst).
		Msg("conversion finished")

	return model.Result{
		ID:              id,
		SourcePath:      req.SourcePath,
		DestinationPath: dst,
		SourceFormat:    cls.Format,
		OutputFormat:    format.String(),
		Animated:        cls.Animated,
		Frames:          cls.Frames,
		Operations:      req.Operations(),
	}, nil
}
