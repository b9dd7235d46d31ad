package pixelgen

import (
	"math"
)

// seedPoint is one scatter point with fractional 3D coordinates.
type seedPoint struct {
	t, y, x Real
}

// Worley generates a cellular distance field: every pixel takes the
// distance to its nearest scatter point, normalized by the volume diagonal
// and inverted so cells glow at their centers.
type Worley struct {
	seed   Seed
	points int
	// volume bounds the scatter; zero value means "use the output shape".
	volume Shape
}

// NewWorley validates the point count. points must be >= 1; a single point
// is degenerate but legal and yields a pure radial gradient.
func NewWorley(seed Seed, points int, volume Shape) (*Worley, error) {
	if points < 1 {
		return nil, errBadConfig("points must be >= 1, got %d", points)
	}
	if volume != (Shape{}) {
		if err := volume.Validate(); err != nil {
			return nil, err
		}
	}
	return &Worley{seed: seed.orDefault(), points: points, volume: volume}, nil
}

func (w *Worley) Seed() int64 {
	return w.seed.Int64()
}

// scatter draws n uniform points in the volume from a seeded generator,
// axes consumed in T, Y, X order so the layout is reproducible.
func scatter(seed Seed, n int, vol Shape) []seedPoint {
	rng := seed.Rand()
	pts := make([]seedPoint, n)
	for i := range pts {
		pts[i] = seedPoint{
			t: rng.Float64() * Real(vol.T),
			y: rng.Float64() * Real(vol.Y),
			x: rng.Float64() * Real(vol.X),
		}
	}
	return pts
}

// nearestDist is the minimum Euclidean distance from (t,y,x) to any point.
// Naive O(points) per pixel; a grid-bucket index is the natural upgrade if
// point counts ever grow beyond toy scale.
func nearestDist(pts []seedPoint, t, y, x Real) Real {
	best := math.Inf(1)
	for _, p := range pts {
		dt := p.t - t
		dy := p.y - y
		dx := p.x - x
		d := dt*dt + dy*dy + dx*dx
		if d < best {
			best = d
		}
	}
	return math.Sqrt(best)
}

// Fill computes the inverted, normalized nearest-point field.
func (w *Worley) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	vol := w.volume
	if vol == (Shape{}) {
		vol = shape
	}
	pts := scatter(w.seed, w.points, vol)
	g := NewGrid(shape)
	fillWorley(g, pts, vol)
	g.Clip01()
	return g, nil
}

func fillWorley(g *Grid, pts []seedPoint, vol Shape) {
	maxDist := vol.Diagonal()
	if maxDist < epsDist {
		maxDist = epsDist
	}
	for t := 0; t < g.Shape.T; t++ {
		for y := 0; y < g.Shape.Y; y++ {
			for x := 0; x < g.Shape.X; x++ {
				d := nearestDist(pts, Real(t), Real(y), Real(x))
				g.Set(t, y, x, 1-d/maxDist)
			}
		}
	}
}

// OctaveWorley composites full Worley passes at rising point density.
// Octave i re-scatters with the point count doubled i times and weight
// amplitude*persistence^i, then the sum is renormalized.
type OctaveWorley struct {
	seed        Seed
	points      int
	volume      Shape
	octaves     int
	persistence Real
	amplitude   Real
}

// NewOctaveWorley validates both the scatter and octave configuration.
func NewOctaveWorley(seed Seed, points int, volume Shape, octaves int, persistence, amplitude Real) (*OctaveWorley, error) {
	if _, err := NewWorley(seed, points, volume); err != nil {
		return nil, err
	}
	if octaves < 1 {
		return nil, errBadConfig("octaves must be >= 1, got %d", octaves)
	}
	if persistence <= 0 {
		return nil, errBadConfig("persistence must be positive, got %v", persistence)
	}
	if amplitude <= 0 {
		return nil, errBadConfig("amplitude must be positive, got %v", amplitude)
	}
	return &OctaveWorley{
		seed:        seed.orDefault(),
		points:      points,
		volume:      volume,
		octaves:     octaves,
		persistence: persistence,
		amplitude:   amplitude,
	}, nil
}

func (w *OctaveWorley) Seed() int64 {
	return w.seed.Int64()
}

func (w *OctaveWorley) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	vol := w.volume
	if vol == (Shape{}) {
		vol = shape
	}

	g := NewGrid(shape)
	layer := NewGrid(shape)
	total := Real(0)
	amp := w.amplitude
	points := w.points
	for o := 0; o < w.octaves; o++ {
		// Offset the seed per octave so each pass scatters independently.
		pts := scatter(SeedInt64(w.seed.Int64()+int64(o)), points, vol)
		fillWorley(layer, pts, vol)
		for i, v := range layer.Buf {
			g.Buf[i] += v * amp
		}
		total += amp
		amp *= w.persistence
		points *= 2
	}

	for i := range g.Buf {
		g.Buf[i] /= total
	}
	g.Clip01()
	return g, nil
}
