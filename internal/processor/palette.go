package processor

import (
	"image"
	"image/color"
	"image/color/palette"

	xdraw "golang.org/x/image/draw"
)

// grayPalette maps palette index i to luminance i, so gray images become
// paletted without any loss.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}

	return p
}()

// toPaletted converts img for the GIF encoder. Gray images use grayPalette;
// images with at most 256 distinct colors get an exact palette; anything
// richer is mapped to the nearest Plan9 color without dithering.
func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()

	if gray, ok := img.(*image.Gray); ok {
		dst := image.NewPaletted(b, grayPalette)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(b.Min.X, y):], gray.Pix[gray.PixOffset(b.Min.X, y):gray.PixOffset(b.Max.X, y)])
		}

		return dst
	}

	pal := exactPalette(img, 256)
	if pal == nil {
		pal = palette.Plan9
	}

	dst := image.NewPaletted(b, pal)
	xdraw.Draw(dst, b, img, b.Min, xdraw.Src)

	return dst
}

// exactPalette collects the distinct colors of img, or returns nil when
// there are more than limit of them.
func exactPalette(img image.Image, limit int) color.Palette {
	b := img.Bounds()
	seen := make(map[color.RGBA]struct{}, limit)
	pal := make(color.Palette, 0, limit)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(pal) == limit {
				return nil
			}
			seen[c] = struct{}{}
			pal = append(pal, c)
		}
	}

	return pal
}
