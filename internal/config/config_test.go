package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBrickball(defaultBrickballYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if want := DefaultBrickballConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadBrickballCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "enemies:\n  count: 2\nfracture:\n  policy: normal\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBrickball(path)
	if err != nil {
		t.Fatalf("LoadBrickball() error = %v", err)
	}
	if cfg.Enemies.Count != 2 {
		t.Errorf("Enemies.Count = %d, expected 2", cfg.Enemies.Count)
	}
	if cfg.Fracture.Policy != FractureNormal {
		t.Errorf("Fracture.Policy = %q, expected normal", cfg.Fracture.Policy)
	}
	if cfg.World.PixelsPerMeter != 50 || cfg.Brick.HalfExtent != 7.5 {
		t.Errorf("unset keys should keep defaults, got ppm=%v half=%v", cfg.World.PixelsPerMeter, cfg.Brick.HalfExtent)
	}
	if len(cfg.Enemies.Colors) != 5 {
		t.Errorf("Enemies.Colors = %v, expected default palette", cfg.Enemies.Colors)
	}
}

func TestLoadBrickballCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBrickball(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBrickball() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBrickball(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("LoadBrickball() error = %v, expected parse failure", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BrickballConfig)
		wantErr string
	}{
		{"defaults", func(*BrickballConfig) {}, ""},
		{"zero scale", func(c *BrickballConfig) { c.World.PixelsPerMeter = 0 }, "pixels_per_meter"},
		{"zero sub steps", func(c *BrickballConfig) { c.World.SubSteps = 0 }, "sub_steps"},
		{"restitution threshold", func(c *BrickballConfig) { c.World.RestitutionThreshold = 1 }, "restitution_threshold"},
		{"inverted wall range", func(c *BrickballConfig) { c.Walls.MinLength = 20 }, "min_length"},
		{"unknown policy", func(c *BrickballConfig) { c.Fracture.Policy = "explode" }, "fracture.policy"},
		{"unknown light", func(c *BrickballConfig) { c.Light.Type = "spot" }, "light.type"},
		{"enemies without colors", func(c *BrickballConfig) { c.Enemies.Colors = nil }, "enemies.colors"},
		{"zero-length walls are fine", func(c *BrickballConfig) { c.Walls.MinLength, c.Walls.MaxLength = 0, 0 }, ""},
		{"extra enemies without colors", func(c *BrickballConfig) { c.Enemies.Count, c.Enemies.Colors = 0, nil }, "enemies.colors"},
		{"extra enemies from initial level without colors", func(c *BrickballConfig) {
			c.Enemies.Count, c.Enemies.Colors = 0, nil
			c.Difficulty.Enabled = false
			c.Difficulty.InitialLevel = 1
		}, "enemies.colors"},
		{"no enemies at all", func(c *BrickballConfig) {
			c.Enemies.Count, c.Enemies.Colors = 0, nil
			c.Difficulty.Scaling.ExtraEnemies = 0
		}, ""},
		{"zero point attenuation", func(c *BrickballConfig) { c.Light.Attenuation = Attenuation{} }, "attenuation.constant"},
		{"negative falloff", func(c *BrickballConfig) { c.Light.Attenuation.Linear = -0.1 }, "attenuation linear"},
		{"directional ignores attenuation", func(c *BrickballConfig) {
			c.Light.Type = LightDirectional
			c.Light.Attenuation = Attenuation{}
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBrickballConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tc.wantErr == "" && err != nil:
				t.Errorf("Validate() = %v, expected nil", err)
			case tc.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tc.wantErr)):
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyBrickballPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		enemies     int
		fracturePol string
	}{
		{DifficultyEasy, true, 0.0, 3, FractureVelocity},
		{DifficultyNormal, true, 0.3, 5, FractureVelocity},
		{DifficultyHard, true, 0.7, 7, FractureNormal},
		{DifficultyFixed, false, 0.0, 5, FractureVelocity},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBrickballConfig()
			ApplyBrickballPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("Difficulty.InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Enemies.Count != tc.enemies {
				t.Errorf("Enemies.Count = %d, expected %d", cfg.Enemies.Count, tc.enemies)
			}
			if cfg.Fracture.Policy != tc.fracturePol {
				t.Errorf("Fracture.Policy = %q, expected %q", cfg.Fracture.Policy, tc.fracturePol)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset = %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultBrickballConfig()
	cfg.Light.Type = LightDirectional
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "pixels_per_meter: 50") {
		t.Errorf("Marshal() output missing snake_case keys:\n%s", data)
	}
}
