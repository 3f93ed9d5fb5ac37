package processor

import (
	"context"
	"fmt"
	"image"
	"image/gif"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// animate runs the per-frame pipeline over a decoded GIF. Frames are first
// coalesced onto the logical screen so every output frame is the complete
// picture; each one is then normalized to opaque RGB, flipped and
// converted to gray as requested.
func (p *Processor) animate(ctx context.Context, src *gif.GIF, t Transform) (*gif.GIF, error) {
	screen := screenBounds(src)
	canvas := image.NewNRGBA(screen)

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(src.Image)),
		Delay:     make([]int, 0, len(src.Image)),
		Disposal:  make([]byte, 0, len(src.Image)),
		LoopCount: src.LoopCount,
		Config:    image.Config{Width: screen.Dx(), Height: screen.Dy()},
	}
	// No NETSCAPE block in the source means "loop forever" on output.
	if out.LoopCount < 0 {
		out.LoopCount = 0
	}

	for i, frame := range src.Image {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		disposal := frameDisposal(src, i)

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = imaging.Clone(canvas)
		}

		xdraw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, xdraw.Over)

		var img image.Image = opaque(canvas)
		if t.FlipHorizontal {
			img = imaging.FlipH(img)
		}
		if t.Grayscale {
			img = toGray(imaging.Grayscale(img))
		}

		out.Image = append(out.Image, toPaletted(img))
		out.Delay = append(out.Delay, p.frameDelay(src, i))
		out.Disposal = append(out.Disposal, gif.DisposalNone)

		switch disposal {
		case gif.DisposalBackground:
			xdraw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	if len(out.Image) == 0 {
		return nil, ErrNoFrames
	}

	return out, nil
}

func (p *Processor) frameDelay(g *gif.GIF, i int) int {
	if i < len(g.Delay) && g.Delay[i] > 0 {
		return g.Delay[i]
	}

	return p.defaultDelay
}

func frameDisposal(g *gif.GIF, i int) byte {
	if i < len(g.Disposal) {
		return g.Disposal[i]
	}

	return gif.DisposalNone
}

// screenBounds returns the logical screen, falling back to the union of
// frame bounds when the header declares none.
func screenBounds(g *gif.GIF) image.Rectangle {
	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if !screen.Empty() {
		return screen
	}

	for _, frame := range g.Image {
		screen = screen.Union(frame.Bounds())
	}

	return image.Rect(0, 0, screen.Max.X, screen.Max.Y)
}

// opaque drops the alpha channel: the copy keeps RGB and is fully opaque.
func opaque(img *image.NRGBA) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}

	return dst
}
