package images

import (
	"errors"
	"fmt"

	xdraw "golang.org/x/image/draw"

	"github.com/mirefox/glint/math32"
)

// ErrMipmapSize is returned when a downsampler produces a level whose
// size is not the previous level halved, rounding up.
var ErrMipmapSize = errors.New("images: mipmap level size must halve (round up)")

// Downsampler produces the next mipmap level from the previous one. It
// must return an image of exactly the requested size.
type Downsampler func(prev *Image, size math32.Vector2i) *Image

// BoxDownsample is the default downsampler, an area-averaging scale from
// x/image/draw.
func BoxDownsample(prev *Image, size math32.Vector2i) *Image {
	return prev.Resize(size, xdraw.ApproxBiLinear)
}

// halve returns s halved per axis, rounding up, never below 1.
func halve(s math32.Vector2i) math32.Vector2i {
	return math32.Vec2i(max((s.X+1)/2, 1), max((s.Y+1)/2, 1))
}

// MipmapChain builds the full mipmap pyramid for base, from level 0
// (base itself) down to 1×1. Each level's size is the previous level
// halved per axis, rounding up; a downsampler that returns any other
// size fails with [ErrMipmapSize]. A nil downsampler uses
// [BoxDownsample].
func MipmapChain(base *Image, down Downsampler) ([]*Image, error) {
	if down == nil {
		down = BoxDownsample
	}
	levels := []*Image{base}
	for prev := base; prev.Size.X > 1 || prev.Size.Y > 1; {
		want := halve(prev.Size)
		next := down(prev, want)
		if next.Size != want {
			return nil, fmt.Errorf("level %d: got %dx%d, want %dx%d: %w",
				len(levels), next.Size.X, next.Size.Y, want.X, want.Y, ErrMipmapSize)
		}
		levels = append(levels, next)
		prev = next
	}
	return levels, nil
}
