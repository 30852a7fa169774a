package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Path.Length != 30 || cfg.Spawner.Interval != 1.5 || cfg.Enemy.StartHealth != 1000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.AutoPlaceTowers() || !cfg.ClickPlaceTowers() {
		t.Fatalf("default placement should allow both")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 42
spawner:
  catch_up: true
towers:
  placement: click
  dps: 250
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 || !cfg.Spawner.CatchUp || cfg.Towers.DPS != 250 {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	// Untouched keys keep defaults.
	if cfg.Spawner.Interval != 1.5 || cfg.Towers.Range != 150 || cfg.Path.HalfWidth != 400 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.AutoPlaceTowers() || !cfg.ClickPlaceTowers() {
		t.Fatalf("placement click: auto=%v click=%v", cfg.AutoPlaceTowers(), cfg.ClickPlaceTowers())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}
	if _, err := Load(writeConfig(t, "path: [1, 2")); err == nil {
		t.Fatalf("Load of broken YAML succeeded")
	}

	_, err := Load(writeConfig(t, "spawner:\n  interval: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load with bad interval: err = %v, want ErrInvalid", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Path.Length = -1
	cfg.Enemy.MaxScale = cfg.Enemy.MinScale
	cfg.Towers.Placement = "sometimes"
	cfg.Combat.ParallelThreshold = -3

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
	for _, field := range []string{"path.length", "enemy.max_scale", "towers.placement", "combat.parallel_threshold"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("error does not mention %s: %v", field, err)
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg != Default() {
		t.Fatalf("LoadOrDefault(\"\") = %+v, %v", cfg, err)
	}
}
