package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/disintegration/imaging"

	// Extra containers that decode but are always written as PNG.
	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/webp"

	"github.com/aliskhannn/grayflip/internal/model"
)

const (
	// DefaultJPEGQuality is the quality used whenever the output is JPEG.
	DefaultJPEGQuality = 95

	// DefaultFrameDelay is used for animation frames that declare no delay,
	// in 1/100 s units.
	DefaultFrameDelay = 10
)

// ErrNoFrames is returned when an animation yields no frames to encode.
var ErrNoFrames = errors.New("no frames produced")

// Transform selects the operations applied to every frame.
// Flip is always applied before grayscale conversion.
type Transform struct {
	Grayscale      bool
	FlipHorizontal bool
}

// Source is a decoded input image together with its classification.
type Source struct {
	format string
	static image.Image
	anim   *gif.GIF
}

// Classification describes the decoded source.
func (s *Source) Classification() model.Classification {
	if s.anim != nil {
		return model.Classification{Format: s.format, Animated: true, Frames: len(s.anim.Image)}
	}

	return model.Classification{Format: s.format, Frames: 1}
}

// Option configures a Processor.
type Option func(*Processor)

// WithJPEGQuality sets the JPEG encoder quality (1-100).
func WithJPEGQuality(q int) Option {
	return func(p *Processor) {
		if q > 0 && q <= 100 {
			p.jpegQuality = q
		}
	}
}

// WithDefaultFrameDelay sets the delay used for frames that declare none.
func WithDefaultFrameDelay(d int) Option {
	return func(p *Processor) {
		if d > 0 {
			p.defaultDelay = d
		}
	}
}

// Processor decodes images, applies grayscale/flip transforms and encodes
// the result, keeping the source container where it can.
type Processor struct {
	jpegQuality  int
	defaultDelay int
}

// New creates a new Processor.
func New(opts ...Option) *Processor {
	p := &Processor{
		jpegQuality:  DefaultJPEGQuality,
		defaultDelay: DefaultFrameDelay,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Decode reads and decodes the whole source. GIFs with more than one frame
// are kept as animations; everything else becomes a single static image.
func (p *Processor) Decode(ctx context.Context, r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if format == "gif" {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode gif: %w", err)
		}

		if len(g.Image) > 1 {
			return &Source{format: format, anim: g}, nil
		}
		if len(g.Image) == 0 {
			return nil, fmt.Errorf("failed to decode gif: %w", ErrNoFrames)
		}

		return &Source{format: format, static: onScreen(g)}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Source{format: format, static: img}, nil
}

// Encode transforms src and writes it to w. It returns the container the
// result was written in.
func (p *Processor) Encode(ctx context.Context, src *Source, t Transform, w io.Writer) (imaging.Format, error) {
	if src.anim != nil {
		anim, err := p.animate(ctx, src.anim, t)
		if err != nil {
			return imaging.GIF, err
		}

		if err := gif.EncodeAll(w, anim); err != nil {
			return imaging.GIF, fmt.Errorf("failed to encode animation: %w", err)
		}

		return imaging.GIF, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	format := OutputFormat(src.format)
	if err := p.encodeStatic(w, p.still(src.static, t), format); err != nil {
		return format, fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	return format, nil
}

// Process decodes r, applies t and writes the result to w.
func (p *Processor) Process(ctx context.Context, r io.Reader, t Transform, w io.Writer) (model.Classification, imaging.Format, error) {
	src, err := p.Decode(ctx, r)
	if err != nil {
		return model.Classification{}, 0, err
	}

	format, err := p.Encode(ctx, src, t, w)

	return src.Classification(), format, err
}
