package pixelgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLayerCfgBuild(t *testing.T) {
	types := []string{
		"unit", "perlin", "octave-perlin", "worley",
		"octave-worley", "maze", "animated-maze", "solved-maze",
	}
	for _, typ := range types {
		gen, err := (LayerCfg{Type: typ, Seed: SeedInt64(1)}).Build()
		require.NoError(t, err, typ)
		require.NotNil(t, gen, typ)
	}

	_, err := (LayerCfg{Type: "simplex"}).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadConfig))
}

func TestLayerCfgBuildDefaults(t *testing.T) {
	// omitted options fall back to package defaults rather than erroring
	gen, err := (LayerCfg{Type: "octave-perlin"}).Build()
	require.NoError(t, err)
	op, ok := gen.(*OctavePerlin)
	require.True(t, ok)
	assert.Equal(t, DefaultOctaves, op.octaves)
	assert.Equal(t, Real(DefaultPersistence), op.persistence)

	gen, err = (LayerCfg{Type: "worley"}).Build()
	require.NoError(t, err)
	w, ok := gen.(*Worley)
	require.True(t, ok)
	assert.Equal(t, DefaultPoints, w.points)
}

func TestLayerCfgBuildInvalidOptions(t *testing.T) {
	_, err := (LayerCfg{Type: "octave-perlin", Octaves: -1}).Build()
	require.Error(t, err)
	_, err = (LayerCfg{Type: "worley", Points: -2}).Build()
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"shape": {"t": 2, "y": 16, "x": 16},
		"out": "out.gif",
		"gifDelay": 10,
		"gamma": 0.8,
		"layers": [
			{"type": "perlin", "seed": "spam", "ease": "smooth"},
			{"type": "worley", "seed": 42, "points": 8, "blend": "multiply"}
		]
	}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 16, 16}, cfg.Shape)
	assert.Equal(t, "out.gif", cfg.Out)
	assert.Equal(t, 10, cfg.GIFDelay)
	require.Len(t, cfg.Layers, 2)
	assert.Equal(t, SeedString("spam"), cfg.Layers[0].Seed)
	assert.Equal(t, SeedInt64(42), cfg.Layers[1].Seed)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad shape", body: `{"shape":{"t":0,"y":4,"x":4},"out":"o.gif","layers":[{"type":"perlin"}]}`},
		{name: "missing out", body: `{"shape":{"t":1,"y":4,"x":4},"layers":[{"type":"perlin"}]}`},
		{name: "no layers", body: `{"shape":{"t":1,"y":4,"x":4},"out":"o.gif","layers":[]}`},
		{name: "unknown type", body: `{"shape":{"t":1,"y":4,"x":4},"out":"o.gif","layers":[{"type":"wavelet"}]}`},
		{name: "unknown ease", body: `{"shape":{"t":1,"y":4,"x":4},"out":"o.gif","layers":[{"type":"perlin","ease":"warp"}]}`},
		{name: "unknown filter", body: `{"shape":{"t":1,"y":4,"x":4},"out":"o.gif","layers":[{"type":"perlin","filter":"emboss"}]}`},
		{name: "unknown blend", body: `{"shape":{"t":1,"y":4,"x":4},"out":"o.gif","layers":[{"type":"perlin","blend":"dodge"}]}`},
		{name: "bad seed type", body: `{"shape":{"t":1,"y":4,"x":4},"out":"o.gif","layers":[{"type":"perlin","seed":{}}]}`},
		{name: "not json", body: `generate me a maze`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
