// Package imagetest builds small in-memory images and encoded fixtures for
// tests of the conversion pipeline.
package imagetest

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
)

// Colors used by the fixtures. Every pixel of an asymmetric fixture differs
// from its horizontal mirror.
var (
	Red         = color.RGBA{R: 0xff, A: 0xff}
	Green       = color.RGBA{G: 0xff, A: 0xff}
	Blue        = color.RGBA{B: 0xff, A: 0xff}
	Yellow      = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	Transparent = color.RGBA{}
)

// Gradient returns an opaque w x h image whose pixels are all distinct.
func Gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 37), G: uint8(y * 53), B: uint8((x + y) * 11), A: 0xff})
		}
	}

	return img
}

// Stripes returns a paletted image with one color per column, cycling
// through pal. Index 0 is left for transparency when pal starts with it.
func Stripes(w, h int, pal color.Palette, shift int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, uint8((x+shift)%len(pal)))
		}
	}

	return img
}

// Animation returns a GIF with n full-screen frames of w x h pixels.
func Animation(n, w, h, delay, loop int) *gif.GIF {
	pal := color.Palette{Red, Green, Blue, Yellow}
	g := &gif.GIF{LoopCount: loop, Config: image.Config{Width: w, Height: h, ColorModel: pal}}
	for i := 0; i < n; i++ {
		g.Image = append(g.Image, Stripes(w, h, pal, i))
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	return g
}

// EncodeGIF encodes g with gif.EncodeAll.
func EncodeGIF(g *gif.GIF) []byte {
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// WriteFile stores data as name inside dir and returns the full path.
func WriteFile(dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		panic(err)
	}

	return path
}

// RGBA returns the 8-bit channels of c.
func RGBA(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()

	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

// IsGray reports whether every pixel of img has equal R, G and B.
func IsGray(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := RGBA(img.At(x, y))
			if r != g || g != bl {
				return false
			}
		}
	}

	return true
}

// IsMirror reports whether out(x, y) == in(w-1-x, y) for every pixel.
func IsMirror(in, out image.Image) bool {
	ib, ob := in.Bounds(), out.Bounds()
	if ib.Dx() != ob.Dx() || ib.Dy() != ob.Dy() {
		return false
	}

	w := ib.Dx()
	for y := 0; y < ib.Dy(); y++ {
		for x := 0; x < w; x++ {
			ir, ig, ibl, ia := RGBA(in.At(ib.Min.X+w-1-x, ib.Min.Y+y))
			or, og, obl, oa := RGBA(out.At(ob.Min.X+x, ob.Min.Y+y))
			if ir != or || ig != og || ibl != obl || ia != oa {
				return false
			}
		}
	}

	return true
}

// SamePixels reports whether a and b hold identical pixels.
func SamePixels(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}

	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, a1 := RGBA(a.At(ab.Min.X+x, ab.Min.Y+y))
			r2, g2, b2, a2 := RGBA(b.At(bb.Min.X+x, bb.Min.Y+y))
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false
			}
		}
	}

	return true
}
