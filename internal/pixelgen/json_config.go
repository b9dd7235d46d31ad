package pixelgen

import (
	"encoding/json"
	"fmt"
	"os"
)

// LayerCfg describes one generator layer plus its optional transform
// chain. Layers composite in order onto the running result via Blend.
type LayerCfg struct {
	Type string `json:"type"`
	Seed Seed   `json:"seed,omitempty"`

	// coherent noise options
	Freq        Real `json:"freq,omitempty"`
	Octaves     int  `json:"octaves,omitempty"`
	Persistence Real `json:"persistence,omitempty"`
	Amplitude   Real `json:"amplitude,omitempty"`

	// cellular options
	Points int    `json:"points,omitempty"`
	Volume *Shape `json:"volume,omitempty"`

	// transform chain, applied in ease -> filter order
	Ease         string `json:"ease,omitempty"`
	Filter       string `json:"filter,omitempty"`
	FilterAmount Real   `json:"filterAmount,omitempty"`

	// blend mode against the running composite; "normal" when empty
	Blend string `json:"blend,omitempty"`
}

// Build constructs the configured generator, applying defaults for
// omitted options.
func (lc LayerCfg) Build() (Generator, error) {
	octaves := lc.Octaves
	if octaves == 0 {
		octaves = DefaultOctaves
	}
	persistence := lc.Persistence
	if persistence == 0 {
		persistence = DefaultPersistence
	}
	amplitude := lc.Amplitude
	if amplitude == 0 {
		amplitude = DefaultAmplitude
	}
	points := lc.Points
	if points == 0 {
		points = DefaultPoints
	}
	volume := Shape{}
	if lc.Volume != nil {
		volume = *lc.Volume
	}

	switch lc.Type {
	case "unit":
		return NewUnitNoise(lc.Seed, lc.Freq), nil
	case "perlin":
		return NewPerlin(lc.Seed, lc.Freq), nil
	case "octave-perlin":
		return NewOctavePerlin(lc.Seed, lc.Freq, octaves, persistence, amplitude)
	case "worley":
		return NewWorley(lc.Seed, points, volume)
	case "octave-worley":
		return NewOctaveWorley(lc.Seed, points, volume, octaves, persistence, amplitude)
	case "maze":
		return NewMaze(lc.Seed), nil
	case "animated-maze":
		return NewAnimatedMaze(lc.Seed), nil
	case "solved-maze":
		return NewSolvedMaze(lc.Seed), nil
	default:
		return nil, errBadConfig("unknown generator type %q", lc.Type)
	}
}

// Config is the top-level job description read by the CLI.
type Config struct {
	Shape    Shape      `json:"shape"`
	Out      string     `json:"out"`
	GIFDelay int        `json:"gifDelay,omitempty"`
	Gamma    Real       `json:"gamma,omitempty"`
	Layers   []LayerCfg `json:"layers"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on a malformed job before any pixels are generated.
func (c *Config) Validate() error {
	if err := c.Shape.Validate(); err != nil {
		return err
	}
	if c.Out == "" {
		return errBadConfig("output path is required")
	}
	if len(c.Layers) == 0 {
		return errBadConfig("at least one layer is required")
	}
	for i, lc := range c.Layers {
		if _, err := lc.Build(); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if lc.Ease != "" {
			if _, ok := Eases[lc.Ease]; !ok {
				return fmt.Errorf("layer %d: %w", i, errBadConfig("unknown ease %q", lc.Ease))
			}
		}
		if lc.Filter != "" {
			if _, ok := Filters[lc.Filter]; !ok {
				return fmt.Errorf("layer %d: %w", i, errBadConfig("unknown filter %q", lc.Filter))
			}
		}
		if lc.Blend != "" {
			if _, ok := Blends[lc.Blend]; !ok {
				return fmt.Errorf("layer %d: %w", i, errBadConfig("unknown blend mode %q", lc.Blend))
			}
		}
	}
	return nil
}
