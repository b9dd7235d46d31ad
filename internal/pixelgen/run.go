package pixelgen

import (
	"fmt"
	"strings"
	"time"
)

// Run executes one generation job: load the config, fill every layer,
// apply its transform chain, composite, and encode the result.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	start := time.Now()
	composite, err := renderLayers(cfg)
	if err != nil {
		return err
	}
	DebugLog("Generated %s in %s", cfg.Shape, time.Since(start))

	opts := SaveOptions{Delay: cfg.GIFDelay, Gamma: cfg.Gamma}
	if err := Save(composite, cfg.Out, opts); err != nil {
		return err
	}
	Logger.Info("Saved output", "path", cfg.Out, "shape", cfg.Shape.String())

	if RAW {
		rawPath := strings.TrimSuffix(cfg.Out, "."+ext(cfg.Out)) + ".raw"
		if err := composite.SaveRaw(rawPath); err != nil {
			return err
		}
		DebugLog("Saved raw volume: %s", rawPath)
	}
	return nil
}

func ext(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return ""
}

// renderLayers fills each configured layer and folds it into the running
// composite with the layer's blend mode.
func renderLayers(cfg *Config) (*Grid, error) {
	var composite *Grid
	for i, lc := range cfg.Layers {
		gen, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		DebugLog("Layer %d: type=%s seed=%d", i, lc.Type, gen.Seed())

		g, err := gen.Fill(cfg.Shape)
		if err != nil {
			return nil, fmt.Errorf("layer %d fill: %w", i, err)
		}
		if lc.Ease != "" {
			if g, err = Ease(lc.Ease, g); err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
		}
		if lc.Filter != "" {
			if g, err = Filter(lc.Filter, g, lc.FilterAmount); err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
		}

		if composite == nil {
			composite = g
			continue
		}
		mode := lc.Blend
		if mode == "" {
			mode = "normal"
		}
		if composite, err = Blend(mode, composite, g); err != nil {
			return nil, fmt.Errorf("layer %d blend: %w", i, err)
		}
	}
	return composite, nil
}
