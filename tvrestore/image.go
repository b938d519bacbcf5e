package tvrestore

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Image is a dense multi-channel planar image. Element (x, y, k) is stored
// at Elems[x + Width*(y + Height*k)], so that each channel occupies a
// contiguous Width*Height block.
type Image struct {
	Elems                   []float64
	Width, Height, Channels int
}

// NewImage allocates a zeroed image of the given shape.
func NewImage(width, height, channels int) *Image {
	n := width * height * channels
	return &Image{
		Elems:    make([]float64, n),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

func (img *Image) index(x, y, k int) int {
	return x + img.Width*(y+img.Height*k)
}

// At returns the value at pixel (x, y), channel k.
func (img *Image) At(x, y, k int) float64 {
	return img.Elems[img.index(x, y, k)]
}

// Set assigns the value at pixel (x, y), channel k.
func (img *Image) Set(x, y, k int, v float64) {
	img.Elems[img.index(x, y, k)] = v
}

// Channel returns the Width*Height slice of Elems backing channel k. It
// aliases img's storage; mutations through it are visible in img.
func (img *Image) Channel(k int) []float64 {
	n := img.Width * img.Height
	return img.Elems[n*k : n*(k+1)]
}

func sameShape(a, b *Image) error {
	if a.Width != b.Width || a.Height != b.Height || a.Channels != b.Channels {
		return fmt.Errorf("shape mismatch: %dx%dx%d vs %dx%dx%d",
			a.Width, a.Height, a.Channels, b.Width, b.Height, b.Channels)
	}
	return nil
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	dst := NewImage(img.Width, img.Height, img.Channels)
	copy(dst.Elems, img.Elems)
	return dst
}

// CopyFrom overwrites img's elements with src's. Panics if the shapes differ.
func (img *Image) CopyFrom(src *Image) {
	if err := sameShape(img, src); err != nil {
		panic(err)
	}
	copy(img.Elems, src.Elems)
}

// Plus returns a new image equal to a + b.
func Plus(a, b *Image) *Image {
	if err := sameShape(a, b); err != nil {
		panic(err)
	}
	dst := NewImage(a.Width, a.Height, a.Channels)
	floats.AddTo(dst.Elems, a.Elems, b.Elems)
	return dst
}

// Minus returns a new image equal to a - b.
func Minus(a, b *Image) *Image {
	if err := sameShape(a, b); err != nil {
		panic(err)
	}
	dst := NewImage(a.Width, a.Height, a.Channels)
	floats.SubTo(dst.Elems, a.Elems, b.Elems)
	return dst
}

// Scale returns k*img as a new image.
func Scale(k float64, img *Image) *Image {
	dst := img.Clone()
	floats.Scale(k, dst.Elems)
	return dst
}

// Dot returns the inner product of a and b, treated as flat vectors.
func Dot(a, b *Image) float64 {
	if err := sameShape(a, b); err != nil {
		panic(err)
	}
	return floats.Dot(a.Elems, b.Elems)
}

// SqrNorm returns the squared L2 norm of img.
func (img *Image) SqrNorm() float64 {
	return floats.Dot(img.Elems, img.Elems)
}

// Norm returns the L2 norm of img.
func (img *Image) Norm() float64 {
	return math.Sqrt(img.SqrNorm())
}
