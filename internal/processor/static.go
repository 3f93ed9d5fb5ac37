package processor

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// OutputFormat maps a decoder format name to the container the result is
// written in. JPEG, PNG, GIF, TIFF and BMP are kept; anything else is PNG.
func OutputFormat(decoded string) imaging.Format {
	f, err := imaging.FormatFromExtension(decoded)
	if err != nil {
		return imaging.PNG
	}

	return f
}

// still runs the single-frame pipeline: flatten, flip, grayscale.
func (p *Processor) still(img image.Image, t Transform) image.Image {
	var out image.Image = flatten(img)

	if t.FlipHorizontal {
		out = imaging.FlipH(out)
	}
	if t.Grayscale {
		out = toGray(imaging.Grayscale(out))
	}

	return out
}

func (p *Processor) encodeStatic(w io.Writer, img image.Image, format imaging.Format) error {
	switch format {
	case imaging.JPEG:
		return imaging.Encode(w, img, format, imaging.JPEGQuality(p.jpegQuality))
	case imaging.GIF:
		// A prepared palette keeps gray output gray instead of Plan9-quantized.
		return imaging.Encode(w, toPaletted(img), format)
	default:
		return imaging.Encode(w, img, format)
	}
}

// flatten returns an opaque full-color copy of img. Images carrying alpha
// or a palette are composited onto white; the rest are converted directly.
func flatten(img image.Image) *image.NRGBA {
	if !hasAlphaOrPalette(img) {
		return imaging.Clone(img)
	}

	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)

	return imaging.Overlay(bg, imaging.Clone(img), image.Pt(0, 0), 1.0)
}

func hasAlphaOrPalette(img image.Image) bool {
	switch img.(type) {
	case *image.Paletted, *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return true
	default:
		return false
	}
}

// toGray keeps the luminance channel of an image whose channels are equal.
func toGray(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride:]
		dst := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dst[x] = src[x*4]
		}
	}

	return gray
}

// onScreen places the only frame of a GIF on its logical screen so that a
// frame smaller than the screen keeps the declared canvas size.
func onScreen(g *gif.GIF) image.Image {
	frame := g.Image[0]
	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() || frame.Bounds() == screen {
		return frame
	}

	canvas := image.NewNRGBA(screen)
	xdraw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, xdraw.Src)

	return canvas
}
