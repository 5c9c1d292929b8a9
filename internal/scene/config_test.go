package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.json")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q) failed: %v", path, err)
		}
		if cfg.DensityDefault != 180 || cfg.DensityMax != 1080 {
			t.Errorf("default density %d/%d, want 180/1080", cfg.DensityDefault, cfg.DensityMax)
		}
		if cfg.BorderExtent != 1.1 {
			t.Errorf("default border extent %v, want 1.1", cfg.BorderExtent)
		}
		if len(cfg.Walls) != 9 {
			t.Errorf("default scene has %d walls, want 9", len(cfg.Walls))
		}
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	data := `{
		"screen_width": 800,
		"screen_height": 600,
		"density_default": 90,
		"walls": [
			{"x1": 0.5, "y1": -0.5, "x2": 0.5, "y2": 0.5}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ScreenWidth != 800 || cfg.ScreenHeight != 600 {
		t.Errorf("screen size %dx%d, want 800x600", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.DensityDefault != 90 {
		t.Errorf("density default %d, want 90", cfg.DensityDefault)
	}
	if len(cfg.Walls) != 1 {
		t.Fatalf("got %d walls, want the single override wall", len(cfg.Walls))
	}
	// Fields absent from the file keep their defaults.
	if cfg.BorderExtent != 1.1 || cfg.CircleRadius != 0.05 {
		t.Errorf("border %v radius %v, want the 1.1/0.05 defaults", cfg.BorderExtent, cfg.CircleRadius)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen width", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative border extent", func(c *Config) { c.BorderExtent = -1 }},
		{"zero circle radius", func(c *Config) { c.CircleRadius = 0 }},
		{"circle radius beyond border", func(c *Config) { c.CircleRadius = 2 }},
		{"zero density max", func(c *Config) { c.DensityMax = 0 }},
		{"negative density default", func(c *Config) { c.DensityDefault = -1 }},
		{"density default above max", func(c *Config) { c.DensityDefault = c.DensityMax + 1 }},
		{"wall outside border", func(c *Config) { c.Walls[0].X2 = 5 }},
	}

	for _, tt := range mutations {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
		}
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config must validate, got: %v", err)
	}
}

func TestConfigScene(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.Scene()
	if len(s.Walls) != len(cfg.Walls) {
		t.Errorf("scene has %d walls, config has %d", len(s.Walls), len(cfg.Walls))
	}
	if len(s.Border) != 4 {
		t.Errorf("scene has %d border segments, want 4", len(s.Border))
	}
}
