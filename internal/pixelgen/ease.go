package pixelgen

// EaseFunc remaps every value of a grid through a [0,1] -> [0,1] curve.
type EaseFunc func(g *Grid) *Grid

// Eases maps ease-curve names to their implementations.
var Eases = map[string]EaseFunc{
	"linear":       easeWith(func(t Real) Real { return t }),
	"in-quad":      easeWith(func(t Real) Real { return t * t }),
	"out-quad":     easeWith(func(t Real) Real { return t * (2 - t) }),
	"in-out-quad":  easeWith(easeInOutQuad),
	"in-cubic":     easeWith(func(t Real) Real { return t * t * t }),
	"out-cubic":    easeWith(func(t Real) Real { u := t - 1; return u*u*u + 1 }),
	"in-out-sine":  easeWith(CosineFade),
	"smooth":       easeWith(SmoothFade),
}

func easeInOutQuad(t Real) Real {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func easeWith(curve func(Real) Real) EaseFunc {
	return func(g *Grid) *Grid {
		out := NewGrid(g.Shape)
		for i, v := range g.Buf {
			out.Buf[i] = clamp01(curve(v))
		}
		return out
	}
}

// Ease looks up a named curve and applies it.
func Ease(name string, g *Grid) (*Grid, error) {
	fn, ok := Eases[name]
	if !ok {
		return nil, errBadConfig("unknown ease %q", name)
	}
	return fn(g), nil
}
