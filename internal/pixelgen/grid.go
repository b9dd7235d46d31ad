package pixelgen

// Grid stores a dense 3D scalar volume in a flat buffer:
// index = (t*Shape.Y + y)*Shape.X + x.
type Grid struct {
	Shape Shape
	Buf   []Real
}

// NewGrid allocates a zero-initialized grid for the given shape.
// The shape must already be validated by the caller.
func NewGrid(shape Shape) *Grid {
	return &Grid{
		Shape: shape,
		Buf:   make([]Real, shape.Pixels()),
	}
}

// Flat buffer index helper.
func (g *Grid) idx(t, y, x int) int {
	return (t*g.Shape.Y+y)*g.Shape.X + x
}

// At returns the value at (t, y, x).
func (g *Grid) At(t, y, x int) Real {
	return g.Buf[g.idx(t, y, x)]
}

// Set stores v at (t, y, x).
func (g *Grid) Set(t, y, x int, v Real) {
	g.Buf[g.idx(t, y, x)] = v
}

// MinMax returns the smallest and largest values in the buffer.
func (g *Grid) MinMax() (minV, maxV Real) {
	minV, maxV = g.Buf[0], g.Buf[0]
	for _, v := range g.Buf {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}

// Clip01 clamps every value into [0,1]. Used by generators to guard against
// floating rounding after normalization, not to mask range bugs.
func (g *Grid) Clip01() {
	for i, v := range g.Buf {
		g.Buf[i] = clamp01(v)
	}
}

// Clone returns a deep copy sharing nothing with the receiver.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.Shape)
	copy(out.Buf, g.Buf)
	return out
}

// SameShape reports whether two grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return g.Shape == o.Shape
}
