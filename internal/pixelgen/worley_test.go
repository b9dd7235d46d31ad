package pixelgen

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorleyValidation(t *testing.T) {
	_, err := NewWorley(SeedInt64(1), 0, Shape{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadConfig))

	_, err = NewWorley(SeedInt64(1), -5, Shape{})
	require.Error(t, err)

	_, err = NewWorley(SeedInt64(1), 4, Shape{0, 4, 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadShape))

	_, err = NewWorley(SeedInt64(1), 1, Shape{})
	require.NoError(t, err, "single point is degenerate but legal")
}

func TestWorleySinglePointRadial(t *testing.T) {
	// one seed point yields a pure radial gradient: value decreases
	// monotonically with distance from the point
	seed := SeedInt64(12345)
	shape := Shape{1, 5, 5}
	w, err := NewWorley(seed, 1, Shape{})
	require.NoError(t, err)
	g, err := w.Fill(shape)
	require.NoError(t, err)

	pts := scatter(seed, 1, shape)
	require.Len(t, pts, 1)
	p := pts[0]

	for y := 0; y < shape.Y; y++ {
		for x := 0; x < shape.X; x++ {
			d := math.Sqrt((p.t-0)*(p.t-0) + (p.y-Real(y))*(p.y-Real(y)) + (p.x-Real(x))*(p.x-Real(x)))
			want := 1 - d/shape.Diagonal()
			assert.InDelta(t, want, g.At(0, y, x), 1e-9, "pixel (%d,%d)", y, x)
		}
	}
}

func TestWorleyPeaksNearPoints(t *testing.T) {
	// the brightest pixel must sit next to a scatter point
	seed := SeedInt64(99)
	shape := Shape{1, 16, 16}
	w, err := NewWorley(seed, 4, Shape{})
	require.NoError(t, err)
	g, err := w.Fill(shape)
	require.NoError(t, err)

	pts := scatter(seed, 4, shape)
	bestY, bestX, bestV := 0, 0, Real(-1)
	for y := 0; y < shape.Y; y++ {
		for x := 0; x < shape.X; x++ {
			if v := g.At(0, y, x); v > bestV {
				bestY, bestX, bestV = y, x, v
			}
		}
	}
	d := nearestDist(pts, 0, Real(bestY), Real(bestX))
	// the peak pixel can be at most one lattice diagonal from its point
	assert.Less(t, d, Real(2))
}

func TestWorleyExplicitVolume(t *testing.T) {
	// an explicit volume decouples the scatter from the output shape
	shape := Shape{1, 8, 8}
	vol := Shape{1, 64, 64}
	w, err := NewWorley(SeedInt64(3), 8, vol)
	require.NoError(t, err)
	g, err := w.Fill(shape)
	require.NoError(t, err)
	minV, maxV := g.MinMax()
	assert.GreaterOrEqual(t, minV, Real(0))
	assert.LessOrEqual(t, maxV, Real(1))
}

func TestNewOctaveWorleyValidation(t *testing.T) {
	_, err := NewOctaveWorley(SeedInt64(1), 4, Shape{}, 0, 0.5, 1)
	require.Error(t, err)
	_, err = NewOctaveWorley(SeedInt64(1), 0, Shape{}, 3, 0.5, 1)
	require.Error(t, err)
	_, err = NewOctaveWorley(SeedInt64(1), 4, Shape{}, 3, -0.5, 1)
	require.Error(t, err)
	_, err = NewOctaveWorley(SeedInt64(1), 4, Shape{}, 3, 0.5, 0)
	require.Error(t, err)
	_, err = NewOctaveWorley(SeedInt64(1), 4, Shape{}, 3, 0.5, 1)
	require.NoError(t, err)
}

func TestOctaveWorleySingleOctaveMatchesWorley(t *testing.T) {
	shape := Shape{1, 8, 8}
	ow, err := NewOctaveWorley(SeedInt64(42), 4, Shape{}, 1, 0.5, 1)
	require.NoError(t, err)
	og, err := ow.Fill(shape)
	require.NoError(t, err)
	w, err := NewWorley(SeedInt64(42), 4, Shape{})
	require.NoError(t, err)
	wg, err := w.Fill(shape)
	require.NoError(t, err)
	for i := range og.Buf {
		assert.InDelta(t, wg.Buf[i], og.Buf[i], 1e-9)
	}
}
