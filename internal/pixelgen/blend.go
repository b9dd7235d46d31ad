package pixelgen

import (
	"fmt"
	"math"
)

// BlendFunc combines two same-shape grids pixel by pixel. Inputs and
// outputs stay within [0,1].
type BlendFunc func(a, b *Grid) (*Grid, error)

// Blends maps blend-mode names to their implementations. An explicit map,
// built once at init; callers look names up directly.
var Blends = map[string]BlendFunc{
	"normal":     blendWith(func(_, b Real) Real { return b }),
	"multiply":   blendWith(func(a, b Real) Real { return a * b }),
	"screen":     blendWith(func(a, b Real) Real { return 1 - (1-a)*(1-b) }),
	"overlay":    blendWith(blendOverlay),
	"darken":     blendWith(math.Min),
	"lighten":    blendWith(math.Max),
	"difference": blendWith(func(a, b Real) Real { return math.Abs(a - b) }),
	"add":        blendWith(func(a, b Real) Real { return clamp01(a + b) }),
	"subtract":   blendWith(func(a, b Real) Real { return clamp01(a - b) }),
	"average":    blendWith(func(a, b Real) Real { return (a + b) / 2 }),
}

func blendOverlay(a, b Real) Real {
	if a < 0.5 {
		return 2 * a * b
	}
	return 1 - 2*(1-a)*(1-b)
}

// blendWith lifts a per-pixel operation to whole grids, enforcing the
// shape contract.
func blendWith(op func(a, b Real) Real) BlendFunc {
	return func(a, b *Grid) (*Grid, error) {
		if !a.SameShape(b) {
			return nil, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a.Shape, b.Shape)
		}
		out := NewGrid(a.Shape)
		for i := range a.Buf {
			out.Buf[i] = op(a.Buf[i], b.Buf[i])
		}
		return out, nil
	}
}

// Blend looks up a named mode and applies it.
func Blend(name string, a, b *Grid) (*Grid, error) {
	fn, ok := Blends[name]
	if !ok {
		return nil, errBadConfig("unknown blend mode %q", name)
	}
	return fn(a, b)
}
