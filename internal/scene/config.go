package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/softglow/raycaster/internal/geom"
)

// Config holds all tunable scene and display settings. Scenes are
// loaded from JSON files so alternate wall layouts can be tried
// without rebuilding.
type Config struct {
	// Window dimensions in pixels. The width/height ratio doubles as
	// the aspect compensation factor for the ray reference circle.
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	// BorderExtent is the half-size of the invisible enclosing
	// rectangle in device coordinates. It must be at least as large as
	// every wall coordinate so rays cannot escape.
	BorderExtent float64 `json:"border_extent"`

	// CircleRadius is the radius of the reference circle around the
	// origin that ray directions are sampled on.
	CircleRadius float64 `json:"circle_radius"`

	// DensityDefault is the ray count at startup; DensityMax caps how
	// far scrolling can raise it.
	DensityDefault int `json:"density_default"`
	DensityMax     int `json:"density_max"`

	Walls []WallConfig `json:"walls"`
}

// WallConfig is one wall segment in scene file form.
type WallConfig struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// DefaultConfig returns the built-in demo scene: a 1920×1080 window,
// the classic nine-wall layout, border at ±1.1, and 180 rays.
func DefaultConfig() *Config {
	cfg := &Config{
		ScreenWidth:    1920,
		ScreenHeight:   1080,
		BorderExtent:   1.1,
		CircleRadius:   0.05,
		DensityDefault: 180,
		DensityMax:     1080,
	}
	for _, w := range DefaultWalls() {
		cfg.Walls = append(cfg.Walls, WallConfig{X1: w.A.X, Y1: w.A.Y, X2: w.B.X, Y2: w.B.Y})
	}
	return cfg
}

// LoadConfig loads a scene config from a JSON file. A missing file (or
// an empty path) falls back to the defaults; file values override the
// defaults field by field.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the visibility core relies on, most
// importantly that the border encloses every wall.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.BorderExtent <= 0 {
		return fmt.Errorf("border extent %v must be positive", c.BorderExtent)
	}
	if c.CircleRadius <= 0 || c.CircleRadius >= c.BorderExtent {
		return fmt.Errorf("circle radius %v must be positive and smaller than the border extent %v",
			c.CircleRadius, c.BorderExtent)
	}
	if c.DensityMax <= 0 {
		return fmt.Errorf("density max %d must be positive", c.DensityMax)
	}
	if c.DensityDefault < 0 || c.DensityDefault > c.DensityMax {
		return fmt.Errorf("density default %d must be within [0, %d]", c.DensityDefault, c.DensityMax)
	}
	for i, w := range c.Walls {
		if m := math.Max(math.Max(math.Abs(w.X1), math.Abs(w.X2)), math.Max(math.Abs(w.Y1), math.Abs(w.Y2))); m > c.BorderExtent {
			return fmt.Errorf("wall %d reaches %v, outside the border extent %v", i, m, c.BorderExtent)
		}
	}
	return nil
}

// Scene builds the obstacle geometry described by the config.
func (c *Config) Scene() *Scene {
	walls := make([]geom.Segment, 0, len(c.Walls))
	for _, w := range c.Walls {
		walls = append(walls, geom.Segment{
			A: geom.Point{X: w.X1, Y: w.Y1},
			B: geom.Point{X: w.X2, Y: w.Y2},
		})
	}
	return &Scene{
		Walls:  walls,
		Border: BorderSegments(c.BorderExtent),
	}
}

// AspectRatio returns the display width/height ratio used to keep the
// ray reference circle visually round.
func (c *Config) AspectRatio() float64 {
	return float64(c.ScreenWidth) / float64(c.ScreenHeight)
}
