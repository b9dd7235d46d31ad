package pixelgen

import (
	"math"
)

// FilterFunc transforms one grid into another of the same shape.
// amount is a filter-specific parameter (threshold level, gamma, ...).
type FilterFunc func(g *Grid, amount Real) (*Grid, error)

// Filters maps filter names to their implementations.
var Filters = map[string]FilterFunc{
	"invert":     filterInvert,
	"threshold":  filterThreshold,
	"gamma":      filterGamma,
	"brightness": filterBrightness,
	"posterize":  filterPosterize,
	"blur":       filterBlur,
}

// Filter looks up a named filter and applies it.
func Filter(name string, g *Grid, amount Real) (*Grid, error) {
	fn, ok := Filters[name]
	if !ok {
		return nil, errBadConfig("unknown filter %q", name)
	}
	return fn(g, amount)
}

func filterInvert(g *Grid, _ Real) (*Grid, error) {
	out := NewGrid(g.Shape)
	for i, v := range g.Buf {
		out.Buf[i] = 1 - v
	}
	return out, nil
}

// filterThreshold maps values below the cutoff to 0 and the rest to 1.
func filterThreshold(g *Grid, level Real) (*Grid, error) {
	if level < 0 || level > 1 {
		return nil, errBadConfig("threshold level must be in [0,1], got %v", level)
	}
	out := NewGrid(g.Shape)
	for i, v := range g.Buf {
		if v >= level {
			out.Buf[i] = 1
		}
	}
	return out, nil
}

func filterGamma(g *Grid, gamma Real) (*Grid, error) {
	if gamma <= 0 {
		return nil, errBadConfig("gamma must be positive, got %v", gamma)
	}
	out := NewGrid(g.Shape)
	for i, v := range g.Buf {
		out.Buf[i] = math.Pow(v, 1.0/gamma)
	}
	return out, nil
}

// filterBrightness shifts all values by amount (may be negative), clamped
// back into range.
func filterBrightness(g *Grid, amount Real) (*Grid, error) {
	out := NewGrid(g.Shape)
	for i, v := range g.Buf {
		out.Buf[i] = clamp01(v + amount)
	}
	return out, nil
}

// filterPosterize quantizes values to amount discrete levels.
func filterPosterize(g *Grid, amount Real) (*Grid, error) {
	levels := int(amount)
	if levels < 2 {
		return nil, errBadConfig("posterize needs >= 2 levels, got %v", amount)
	}
	out := NewGrid(g.Shape)
	steps := Real(levels - 1)
	for i, v := range g.Buf {
		out.Buf[i] = math.Round(v*steps) / steps
	}
	return out, nil
}

// filterBlur applies a 3x3 box blur to each frame independently. Edge
// pixels average over the neighbors that exist.
func filterBlur(g *Grid, _ Real) (*Grid, error) {
	out := NewGrid(g.Shape)
	for t := 0; t < g.Shape.T; t++ {
		for y := 0; y < g.Shape.Y; y++ {
			for x := 0; x < g.Shape.X; x++ {
				sum := Real(0)
				cnt := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						ny, nx := y+dy, x+dx
						if ny < 0 || ny >= g.Shape.Y || nx < 0 || nx >= g.Shape.X {
							continue
						}
						sum += g.At(t, ny, nx)
						cnt++
					}
				}
				out.Set(t, y, x, sum/Real(cnt))
			}
		}
	}
	return out, nil
}
