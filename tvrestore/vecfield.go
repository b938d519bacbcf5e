package tvrestore

// Vec2 is a 2D vector with the components used by the gradient field: an
// x-component (horizontal forward difference) and a y-component (vertical
// forward difference).
type Vec2 struct {
	X, Y float64
}

// VectorField is a per-pixel field of Vec2, one vector per (x, y, k), with
// the same planar layout and shape as Image. It backs both d and d̃.
type VectorField struct {
	Elems                   []Vec2
	Width, Height, Channels int
}

// NewVectorField allocates a zeroed vector field of the given shape.
func NewVectorField(width, height, channels int) *VectorField {
	n := width * height * channels
	return &VectorField{
		Elems:    make([]Vec2, n),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

func (f *VectorField) index(x, y, k int) int {
	return x + f.Width*(y+f.Height*k)
}

// At returns the vector at pixel (x, y), channel k.
func (f *VectorField) At(x, y, k int) Vec2 {
	return f.Elems[f.index(x, y, k)]
}

// Set assigns the vector at pixel (x, y), channel k.
func (f *VectorField) Set(x, y, k int, v Vec2) {
	f.Elems[f.index(x, y, k)] = v
}

// Zero resets every vector in f to the zero vector.
func (f *VectorField) Zero() {
	for i := range f.Elems {
		f.Elems[i] = Vec2{}
	}
}
