package pixelgen

// Perlin is a single-octave coherent noise source: one unit-noise
// evaluation rescaled from [-1,1] to [0,1].
type Perlin struct {
	noise *UnitNoise
}

// NewPerlin creates a Perlin generator. freq <= 0 selects the default
// lattice frequency.
func NewPerlin(seed Seed, freq Real) *Perlin {
	return &Perlin{noise: NewUnitNoise(seed, freq)}
}

func (p *Perlin) Seed() int64 {
	return p.noise.Seed()
}

// Fill delegates to the unit-noise field.
func (p *Perlin) Fill(shape Shape) (*Grid, error) {
	return p.noise.Fill(shape)
}

// OctavePerlin stacks unit noise at doubling frequencies. Octave i is
// sampled at freq*2^i and weighted by amplitude*persistence^i; the sum is
// normalized by the total possible amplitude so output stays in [0,1].
type OctavePerlin struct {
	noise       *UnitNoise
	octaves     int
	persistence Real
	amplitude   Real
}

// NewOctavePerlin validates the octave configuration up front. Octaves
// must be >= 1; persistence and amplitude must be positive.
func NewOctavePerlin(seed Seed, freq Real, octaves int, persistence, amplitude Real) (*OctavePerlin, error) {
	if octaves < 1 {
		return nil, errBadConfig("octaves must be >= 1, got %d", octaves)
	}
	if persistence <= 0 {
		return nil, errBadConfig("persistence must be positive, got %v", persistence)
	}
	if amplitude <= 0 {
		return nil, errBadConfig("amplitude must be positive, got %v", amplitude)
	}
	return &OctavePerlin{
		noise:       NewUnitNoise(seed, freq),
		octaves:     octaves,
		persistence: persistence,
		amplitude:   amplitude,
	}, nil
}

func (p *OctavePerlin) Seed() int64 {
	return p.noise.Seed()
}

// Fill accumulates all octaves, then divides by the maximum possible
// accumulated amplitude.
func (p *OctavePerlin) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	g := NewGrid(shape)

	total := Real(0)
	amp := p.amplitude
	freq := p.noise.freq
	for o := 0; o < p.octaves; o++ {
		for t := 0; t < shape.T; t++ {
			for y := 0; y < shape.Y; y++ {
				for x := 0; x < shape.X; x++ {
					v := (p.noise.Eval3(Real(t)*freq, Real(y)*freq, Real(x)*freq) + 1) / 2
					g.Buf[g.idx(t, y, x)] += v * amp
				}
			}
		}
		total += amp
		amp *= p.persistence
		freq *= 2
	}

	for i := range g.Buf {
		g.Buf[i] /= total
	}
	g.Clip01()
	return g, nil
}
