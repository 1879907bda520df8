// Package images holds CPU-side RGBA8 images: PNG decoding, subimages,
// resizing, and mipmap chain construction for texture upload.
package images

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/mirefox/glint/math32"
)

// Image is a tightly packed RGBA8 pixel grid, row-major with a top-left
// origin (stride is always 4*Size.X).
type Image struct {
	Size math32.Vector2i
	Pix  []uint8
}

// New returns a zeroed (transparent black) image of the given size.
func New(size math32.Vector2i) *Image {
	return &Image{Size: size, Pix: make([]uint8, int(size.X)*int(size.Y)*4)}
}

// FromImage converts any stdlib image into a tightly packed RGBA8 image.
func FromImage(src image.Image) *Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := New(math32.Vec2i(int32(w), int32(h)))
	tmp := &image.RGBA{Pix: dst.Pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	draw.Draw(tmp, tmp.Rect, src, src.Bounds().Min, draw.Src)
	return dst
}

// Decode reads a PNG stream into an image.
func Decode(r io.Reader) (*Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return FromImage(src), nil
}

// Load reads a PNG file into an image.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return img, nil
}

func (m *Image) offset(p math32.Vector2i) int {
	return (int(p.Y)*int(m.Size.X) + int(p.X)) * 4
}

// At returns the pixel at p. p must lie inside the image.
func (m *Image) At(p math32.Vector2i) color.RGBA {
	i := m.offset(p)
	return color.RGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
}

// Set writes the pixel at p. p must lie inside the image.
func (m *Image) Set(p math32.Vector2i, c color.RGBA) {
	i := m.offset(p)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = c.R, c.G, c.B, c.A
}

// SubImage copies the pixels inside the half-open bounds into a new
// image. The bounds are clamped to the image extent first.
func (m *Image) SubImage(b math32.Bounds2) *Image {
	b = b.Intersect(math32.B2(math32.Vector2i{}, m.Size))
	out := New(b.Size())
	w := int(b.Size().X) * 4
	for y := int32(0); y < b.Size().Y; y++ {
		src := m.offset(math32.Vec2i(b.Low.X, b.Low.Y+y))
		dst := out.offset(math32.Vec2i(0, y))
		copy(out.Pix[dst:dst+w], m.Pix[src:src+w])
	}
	return out
}

// FlipY reverses the row order in place. PNG rows run top to bottom;
// OpenGL texture rows run bottom to top.
func (m *Image) FlipY() {
	w := int(m.Size.X) * 4
	h := int(m.Size.Y)
	row := make([]uint8, w)
	for y := 0; y < h/2; y++ {
		top := m.Pix[y*w : (y+1)*w]
		bot := m.Pix[(h-1-y)*w : (h-y)*w]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	out := New(m.Size)
	copy(out.Pix, m.Pix)
	return out
}

// ToRGBA wraps the pixel data as a stdlib *image.RGBA sharing the same
// backing array.
func (m *Image) ToRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    m.Pix,
		Stride: int(m.Size.X) * 4,
		Rect:   image.Rect(0, 0, int(m.Size.X), int(m.Size.Y)),
	}
}

// Resize scales the image to the given size with the given scaler
// (e.g. x/image/draw.BiLinear). A nil scaler uses BiLinear.
func (m *Image) Resize(size math32.Vector2i, scaler xdraw.Scaler) *Image {
	if scaler == nil {
		scaler = xdraw.BiLinear
	}
	out := New(size)
	scaler.Scale(out.ToRGBA(), out.ToRGBA().Rect, m.ToRGBA(), m.ToRGBA().Rect, xdraw.Src, nil)
	return out
}
