package pixelgen

import (
	"math"
)

// UnitNoise evaluates coherent value noise on a unit lattice. Lattice
// corners are hashed through a seeded permutation table, fractional
// offsets are smoothed with the quintic fade, and the 8 corner values are
// trilinearly interpolated. The field tiles at period 256 on every axis.
type UnitNoise struct {
	seed Seed
	freq Real
	perm [2 * PermSize]int
}

// NewUnitNoise builds the permutation table from the seed: a Fisher–Yates
// shuffle of 0..255, doubled to 512 entries so corner hashing never needs
// a second modulo. freq scales pixel coordinates into lattice space;
// freq <= 0 selects the default of 1/16 (one lattice cell per 16 pixels).
func NewUnitNoise(seed Seed, freq Real) *UnitNoise {
	if freq <= 0 {
		freq = 1.0 / 16
	}
	n := &UnitNoise{seed: seed.orDefault(), freq: freq}
	rng := n.seed.Rand()
	for i := 0; i < PermSize; i++ {
		n.perm[i] = i
	}
	for i := PermSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		n.perm[i], n.perm[j] = n.perm[j], n.perm[i]
	}
	for i := 0; i < PermSize; i++ {
		n.perm[PermSize+i] = n.perm[i]
	}
	DebugLog("Built permutation table for seed %d", n.seed.Int64())
	return n
}

// Seed returns the expanded seed value.
func (n *UnitNoise) Seed() int64 {
	return n.seed.Int64()
}

// corner hashes integer lattice coordinates to a deterministic value in
// [-1,1] via three chained table lookups, one per axis.
func (n *UnitNoise) corner(ti, yi, xi int) Real {
	h := n.perm[n.perm[n.perm[xi&(PermSize-1)]+yi&(PermSize-1)]+ti&(PermSize-1)]
	return Real(h)/Real(PermSize-1)*2 - 1
}

// Eval3 returns the noise value at a fractional lattice coordinate,
// in [-1,1]. Identical inputs always yield identical outputs.
func (n *UnitNoise) Eval3(t, y, x Real) Real {
	tf := math.Floor(t)
	yf := math.Floor(y)
	xf := math.Floor(x)
	ti, yi, xi := int(tf), int(yf), int(xf)

	// fractional offset inside the cell, smoothed per axis
	u := SmoothFade(t - tf)
	v := SmoothFade(y - yf)
	w := SmoothFade(x - xf)

	// 8 corners collapse 8 -> 4 -> 2 -> 1
	c000 := n.corner(ti, yi, xi)
	c001 := n.corner(ti, yi, xi+1)
	c010 := n.corner(ti, yi+1, xi)
	c011 := n.corner(ti, yi+1, xi+1)
	c100 := n.corner(ti+1, yi, xi)
	c101 := n.corner(ti+1, yi, xi+1)
	c110 := n.corner(ti+1, yi+1, xi)
	c111 := n.corner(ti+1, yi+1, xi+1)

	y0 := Lerp(Lerp(c000, c001, w), Lerp(c010, c011, w), v)
	y1 := Lerp(Lerp(c100, c101, w), Lerp(c110, c111, w), v)
	return Lerp(y0, y1, u)
}

// Fill evaluates the field over the whole volume, rescaled to [0,1].
func (n *UnitNoise) Fill(shape Shape) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	g := NewGrid(shape)
	n.fillInto(g, n.freq)
	g.Clip01()
	return g, nil
}

// fillInto writes (Eval3+1)/2 at the given frequency into an existing grid.
func (n *UnitNoise) fillInto(g *Grid, freq Real) {
	for t := 0; t < g.Shape.T; t++ {
		for y := 0; y < g.Shape.Y; y++ {
			for x := 0; x < g.Shape.X; x++ {
				v := n.Eval3(Real(t)*freq, Real(y)*freq, Real(x)*freq)
				g.Set(t, y, x, (v+1)/2)
			}
		}
	}
}
