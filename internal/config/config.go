// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Параметры окна и отрисовки. Симуляция от них не зависит.
const (
	ScreenWidth     = 1000
	ScreenHeight    = 600
	MaxDeltaTime    = 0.06
	TowerRadius     = 10.0
	EnemyRadius     = 14.0
	StrokeWidth     = 2.0
	CounterY        = 30
	SpeedButtonX    = ScreenWidth - 40
	SpeedButtonY    = 30
	SpeedButtonSize = 12.0
	PauseButtonX    = ScreenWidth - 90
	PauseButtonY    = 30
	PauseButtonSize = 10.0
	UIBorderWidth   = 1.0
	ClickCooldown   = 150 // ms
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	PathColor        = color.RGBA{255, 255, 255, 160}
	TowerColor       = color.RGBA{50, 100, 255, 255}
	TowerRangeColor  = color.RGBA{50, 100, 255, 40}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	TargetLineColor  = color.RGBA{255, 0, 0, 255}
	CounterColor     = color.RGBA{50, 100, 255, 255}
	SpawnerColor     = color.RGBA{0, 255, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{60, 180, 90, 220}
	UIBorderColor    = color.RGBA{255, 255, 255, 255}
	SpeedButtonColor = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)

// Tower placement policies.
const (
	PlacementAuto  = "auto"
	PlacementClick = "click"
	PlacementBoth  = "both"
	PlacementNone  = "none"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PathConfig controls procedural path generation.
type PathConfig struct {
	Length       int     `yaml:"length"`
	HalfWidth    float64 `yaml:"half_width"`
	HalfHeight   float64 `yaml:"half_height"`
	Step         float64 `yaml:"step"`
	SampleOffset float64 `yaml:"sample_offset"`
	SampleRow    float64 `yaml:"sample_row"`
	Octaves      int32   `yaml:"octaves"`
	Alpha        float64 `yaml:"alpha"` // делитель амплитуды между октавами
	Beta         float64 `yaml:"beta"`  // множитель частоты между октавами
	SeedX        int64   `yaml:"seed_x"`
	SeedY        int64   `yaml:"seed_y"`
}

// EnemyConfig holds the uniform enemy parameters.
type EnemyConfig struct {
	Speed       float64 `yaml:"speed"`
	StartHealth float64 `yaml:"start_health"`
	Epsilon     float64 `yaml:"waypoint_epsilon"`
	MinScale    float64 `yaml:"min_scale"`
	MaxScale    float64 `yaml:"max_scale"`
}

type SpawnerConfig struct {
	Interval float64 `yaml:"interval"`
	CatchUp  bool    `yaml:"catch_up"`
}

// TowerConfig holds the uniform tower parameters and the startup policy.
type TowerConfig struct {
	Range         float64 `yaml:"range"`
	DPS           float64 `yaml:"dps"`
	Placement     string  `yaml:"placement"`
	StartingCount int     `yaml:"starting_count"`
	OffsetMin     float64 `yaml:"offset_min"`
	OffsetMax     float64 `yaml:"offset_max"`
}

type CombatConfig struct {
	// ParallelThreshold — с какого числа башен поиск целей идёт параллельно.
	// 0 отключает параллельный режим.
	ParallelThreshold int `yaml:"parallel_threshold"`
}

// Config is the full set of simulation tunables.
type Config struct {
	Seed             int64         `yaml:"seed"`
	InitialResources int           `yaml:"initial_resources"`
	Path             PathConfig    `yaml:"path"`
	Enemy            EnemyConfig   `yaml:"enemy"`
	Spawner          SpawnerConfig `yaml:"spawner"`
	Towers           TowerConfig   `yaml:"towers"`
	Combat           CombatConfig  `yaml:"combat"`
}

// Default returns the stock tunables.
func Default() Config {
	return Config{
		Seed:             0,
		InitialResources: 1000,
		Path: PathConfig{
			Length:       30,
			HalfWidth:    400,
			HalfHeight:   290,
			Step:         1.0 / 20.0,
			SampleOffset: 0.1,
			SampleRow:    0.1,
			Octaves:      6,
			Alpha:        2,
			Beta:         2,
		},
		Enemy: EnemyConfig{
			Speed:       100,
			StartHealth: 1000,
			Epsilon:     1.0,
			MinScale:    0.4,
			MaxScale:    1.2,
		},
		Spawner: SpawnerConfig{
			Interval: 1.5,
			CatchUp:  false,
		},
		Towers: TowerConfig{
			Range:         150,
			DPS:           100,
			Placement:     PlacementBoth,
			StartingCount: 5,
			OffsetMin:     50,
			OffsetMax:     100,
		},
		Combat: CombatConfig{
			ParallelThreshold: 64,
		},
	}
}

// Load reads a YAML file on top of Default. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that an empty path yields Default.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// AutoPlaceTowers reports whether starting towers are seeded along the path.
func (c Config) AutoPlaceTowers() bool {
	return c.Towers.Placement == PlacementAuto || c.Towers.Placement == PlacementBoth
}

// ClickPlaceTowers reports whether the input layer may place towers.
func (c Config) ClickPlaceTowers() bool {
	return c.Towers.Placement == PlacementClick || c.Towers.Placement == PlacementBoth
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	if c.Path.Length < 0 {
		bad("path.length", "must be >= 0, got %d", c.Path.Length)
	}
	if !positive(c.Path.HalfWidth) {
		bad("path.half_width", "must be > 0, got %v", c.Path.HalfWidth)
	}
	if !positive(c.Path.HalfHeight) {
		bad("path.half_height", "must be > 0, got %v", c.Path.HalfHeight)
	}
	if !positive(c.Path.Step) {
		bad("path.step", "must be > 0, got %v", c.Path.Step)
	}
	if c.Path.Octaves < 1 {
		bad("path.octaves", "must be >= 1, got %d", c.Path.Octaves)
	}
	if !positive(c.Enemy.Speed) {
		bad("enemy.speed", "must be > 0, got %v", c.Enemy.Speed)
	}
	if !positive(c.Enemy.StartHealth) {
		bad("enemy.start_health", "must be > 0, got %v", c.Enemy.StartHealth)
	}
	if c.Enemy.Epsilon < 0 || math.IsNaN(c.Enemy.Epsilon) {
		bad("enemy.waypoint_epsilon", "must be >= 0, got %v", c.Enemy.Epsilon)
	}
	if !(c.Enemy.MaxScale > c.Enemy.MinScale) {
		bad("enemy.max_scale", "must be greater than min_scale (%v), got %v", c.Enemy.MinScale, c.Enemy.MaxScale)
	}
	if !positive(c.Spawner.Interval) {
		bad("spawner.interval", "must be > 0, got %v", c.Spawner.Interval)
	}
	if c.Towers.Range < 0 || math.IsNaN(c.Towers.Range) {
		bad("towers.range", "must be >= 0, got %v", c.Towers.Range)
	}
	if c.Towers.DPS < 0 || math.IsNaN(c.Towers.DPS) {
		bad("towers.dps", "must be >= 0, got %v", c.Towers.DPS)
	}
	switch c.Towers.Placement {
	case PlacementAuto, PlacementClick, PlacementBoth, PlacementNone:
	default:
		bad("towers.placement", "unknown policy %q", c.Towers.Placement)
	}
	if c.Towers.StartingCount < 0 {
		bad("towers.starting_count", "must be >= 0, got %d", c.Towers.StartingCount)
	}
	if c.Towers.OffsetMin < 0 || c.Towers.OffsetMax < c.Towers.OffsetMin {
		bad("towers.offset_min", "need 0 <= offset_min <= offset_max, got %v..%v", c.Towers.OffsetMin, c.Towers.OffsetMax)
	}
	if c.Combat.ParallelThreshold < 0 {
		bad("combat.parallel_threshold", "must be >= 0, got %d", c.Combat.ParallelThreshold)
	}
	return errors.Join(errs...)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
