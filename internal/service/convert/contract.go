package convert

import (
	"context"
	"io"

	"github.com/disintegration/imaging"

	"github.com/aliskhannn/grayflip/internal/processor"
)

// fileStorage defines where sources are read from and results written to
// (local filesystem or object storage).
type fileStorage interface {
	Exists(ctx context.Context, path string) (bool, error)
	Load(ctx context.Context, path string) (io.ReadCloser, error)
	Save(ctx context.Context, path string, src io.Reader) error
}

// imageProcessor decodes a source and encodes the transformed result.
type imageProcessor interface {
	Decode(ctx context.Context, r io.Reader) (*processor.Source, error)
	Encode(ctx context.Context, src *processor.Source, t processor.Transform, w io.Writer) (imaging.Format, error)
}
