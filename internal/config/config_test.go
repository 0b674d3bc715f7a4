package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseScroller(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultScrollerConfig()) {
		t.Errorf("embedded defaults differ from hardcoded defaults:\n%+v\n%+v", cfg, DefaultScrollerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadScrollerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("progression:\n  lives: 7\nphysics:\n  gravity: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadScroller(path)
	if err != nil {
		t.Fatalf("LoadScroller: %v", err)
	}
	if cfg.Progression.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Progression.Lives)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	// Unset keys keep their defaults
	if cfg.Obstacles.Gap != 30 {
		t.Errorf("gap = %d, expected default 30", cfg.Obstacles.Gap)
	}
}

func TestLoadScrollerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadScroller(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScroller(bad); err == nil {
		t.Error("malformed explicit config should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScrollerConfig)
		valid  bool
	}{
		{"defaults", func(*ScrollerConfig) {}, true},
		{"zero tick", func(c *ScrollerConfig) { c.Timing.TickMillis = 0 }, false},
		{"no lives", func(c *ScrollerConfig) { c.Progression.Lives = 0 }, false},
		{"zero level interval", func(c *ScrollerConfig) { c.Progression.LevelEvery = 0 }, false},
		{"negative stars", func(c *ScrollerConfig) { c.Scenery.StarCount = -1 }, false},
		{"zero mountain cadence", func(c *ScrollerConfig) { c.Scenery.MountainEvery = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultScrollerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyScrollerPreset(t *testing.T) {
	normal := DefaultScrollerConfig()
	ApplyScrollerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultScrollerConfig()) {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultScrollerConfig()
	ApplyScrollerPreset(&easy, DifficultyEasy)
	if easy.Progression.Lives <= normal.Progression.Lives {
		t.Errorf("easy should grant more lives, got %d", easy.Progression.Lives)
	}

	hard := DefaultScrollerConfig()
	ApplyScrollerPreset(&hard, DifficultyHard)
	if hard.Progression.StartSpeed <= 1 {
		t.Errorf("hard should start faster, got %v", hard.Progression.StartSpeed)
	}

	fixed := DefaultScrollerConfig()
	ApplyScrollerPreset(&fixed, DifficultyFixed)
	if fixed.Progression.SpeedFactor != 1 || fixed.Progression.CountFactor != 1 {
		t.Error("fixed preset should disable multiplier growth")
	}
}

func TestTimingInterval(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{50, 50 * time.Millisecond},
		{30, 30 * time.Millisecond},
		{1500, 1500 * time.Millisecond},
		{0, 50 * time.Millisecond},
		{-5, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := (TimingConfig{TickMillis: tt.ms}).Interval(); got != tt.want {
			t.Errorf("Interval(%dms) = %v, expected %v", tt.ms, got, tt.want)
		}
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultScrollerConfig()
	cfg.Timing.TickMillis = 30

	rt := cfg.Runtime(100, 30, 99)
	if rt.ScreenW != 100 || rt.ScreenH != 30 {
		t.Errorf("size = %dx%d, expected 100x30", rt.ScreenW, rt.ScreenH)
	}
	if rt.TickInterval() != 30*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 30ms", rt.TickInterval())
	}
	if rt.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", rt.Seed)
	}

	if rt := cfg.Runtime(80, 24, 0); rt.Seed == 0 {
		t.Error("seed 0 should be replaced with a time-based seed")
	}
}
