// internal/app/game.go
package app

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/event"
	"path-tower-defense/internal/logging"
	"path-tower-defense/internal/observability"
	"path-tower-defense/internal/system"
	"path-tower-defense/internal/types"
	"path-tower-defense/internal/utils"
	"path-tower-defense/pkg/waypath"
)

// Stats — накопленные счётчики сессии.
type Stats struct {
	GameTime     float64
	Spawned      int
	Killed       int
	ReachedGoal  int
	TowersPlaced int
	Enemies      int
	Towers       int
}

// Game holds the simulation state and the ordered per-tick pipeline.
type Game struct {
	Config          config.Config
	SessionID       uuid.UUID
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	LifecycleSystem *system.LifecycleSystem
	VisualSystem    *system.VisualSystem
	TowerSystem     *system.TowerSystem
	SpeedMultiplier float64

	path      waypath.Path
	logger    logging.Logger
	metrics   *observability.SimCollector
	resources int
	targets   []system.Engagement
	stats     Stats
	speedStep int
	isPaused  bool
}

// NewGame builds a session from cfg: generates the path, places the spawner on
// its first waypoint and, when the placement policy allows, seeds the starting
// towers. logger and metrics may be nil.
func NewGame(cfg config.Config, logger logging.Logger, metrics *observability.SimCollector) *Game {
	if logger == nil {
		logger = logging.Noop()
	}

	rng := utils.NewPRNGService(cfg.Seed)
	seedX, seedY := cfg.Path.SeedX, cfg.Path.SeedY
	if seedX == 0 && seedY == 0 {
		seedX, seedY = rng.Int63(), rng.Int63()
	}
	fieldX, fieldY := waypath.NewFields(cfg.Path, seedX, seedY)
	path := waypath.Generate(cfg.Path, fieldX, fieldY)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		SessionID:       uuid.New(),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		SpawnSystem:     system.NewSpawnSystem(ecs, path, cfg.Enemy, eventDispatcher),
		MovementSystem:  system.NewMovementSystem(ecs, path, cfg.Enemy.Epsilon),
		CombatSystem:    system.NewCombatSystem(ecs, cfg.Combat.ParallelThreshold),
		LifecycleSystem: system.NewLifecycleSystem(ecs, eventDispatcher),
		VisualSystem:    system.NewVisualSystem(ecs, cfg.Enemy.StartHealth, cfg.Enemy.MinScale, cfg.Enemy.MaxScale),
		TowerSystem:     system.NewTowerSystem(ecs, cfg.Towers, rng, eventDispatcher),
		SpeedMultiplier: config.SpeedMultipliers[0],
		path:            path,
		metrics:         metrics,
		resources:       cfg.InitialResources,
	}
	g.logger = logger.With(logging.String("session", g.SessionID.String()))

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.EnemySpawned, event.EnemyKilled, event.EnemyReachedGoal, event.TowerPlaced)
	metrics.Subscribe(eventDispatcher)

	g.SpawnSystem.CreateSpawner(cfg.Spawner)
	if cfg.AutoPlaceTowers() {
		g.TowerSystem.SeedAlongPath(path)
	}

	g.logger.Info(context.Background(), "session started",
		logging.Int64("seed", rng.Seed()),
		logging.Int64("path_seed_x", seedX),
		logging.Int64("path_seed_y", seedY),
		logging.Int("path_len", path.Len()),
		logging.Int("towers", len(ecs.TowerIDs())),
		logging.String("placement", cfg.Towers.Placement),
	)
	return g
}

// Update progresses the simulation by one frame. Negative, NaN or infinite
// deltaTime is treated as zero. Order: spawn, move, combat, lifecycle, visual; queued events
// are delivered after the whole pipeline.
func (g *Game) Update(deltaTime float64) {
	if !(deltaTime >= 0) || math.IsInf(deltaTime, 0) {
		deltaTime = 0
	}
	start := time.Now()
	dt := deltaTime * g.SpeedMultiplier
	g.ECS.GameTime += dt

	g.SpawnSystem.Update(dt)
	reached := g.MovementSystem.Update(dt)
	g.LifecycleSystem.MarkReachedGoal(reached...)
	g.targets = g.CombatSystem.Update(dt)
	g.LifecycleSystem.Update()
	g.VisualSystem.Update()

	g.EventDispatcher.Flush()
	g.metrics.ObserveTick(time.Since(start), len(g.ECS.EnemyIDs()), len(g.ECS.TowerIDs()))
}

// Path returns the session's waypoint list.
func (g *Game) Path() waypath.Path {
	return g.path
}

// EnemySnapshot is a read-only copy of one enemy's public state.
type EnemySnapshot struct {
	ID        types.EntityID
	X, Y      float64
	Rotation  float64
	Health    float64
	Scale     float64
	SpawnedAt float64
	Look      component.Renderable
}

// Enemies returns every live enemy in creation order.
func (g *Game) Enemies() []EnemySnapshot {
	ids := g.ECS.EnemyIDs()
	out := make([]EnemySnapshot, 0, len(ids))
	for _, id := range ids {
		s := EnemySnapshot{ID: id}
		if pos, ok := g.ECS.Positions[id]; ok {
			s.X, s.Y = pos.X, pos.Y
		}
		if rot, ok := g.ECS.Rotations[id]; ok {
			s.Rotation = rot.Angle
		}
		if h, ok := g.ECS.Healths[id]; ok {
			s.Health = h.Value
		}
		if sc, ok := g.ECS.Scales[id]; ok {
			s.Scale = sc.Value
		}
		if e, ok := g.ECS.Enemies[id]; ok {
			s.SpawnedAt = e.SpawnedAt
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			s.Look = *r
		}
		out = append(out, s)
	}
	return out
}

// Target is one tower firing at one enemy during the last tick.
type Target struct {
	Tower  types.EntityID
	Enemy  types.EntityID
	FromX  float64
	FromY  float64
	ToX    float64
	ToY    float64
	Damage float64
}

// Targets returns the last tick's tower->enemy pairs whose enemy is still on
// the field, for debug target lines.
func (g *Game) Targets() []Target {
	out := make([]Target, 0, len(g.targets))
	for _, e := range g.targets {
		from, okFrom := g.ECS.Positions[e.Tower]
		to, okTo := g.ECS.Positions[e.Enemy]
		if !okFrom || !okTo {
			continue
		}
		out = append(out, Target{
			Tower:  e.Tower,
			Enemy:  e.Enemy,
			FromX:  from.X,
			FromY:  from.Y,
			ToX:    to.X,
			ToY:    to.Y,
			Damage: e.Damage,
		})
	}
	return out
}

// --- Resources ---

func (g *Game) Resources() int {
	return g.resources
}

func (g *Game) SetResources(value int) {
	g.resources = value
}

// AddResources adds delta (may be negative) and returns the new value.
func (g *Game) AddResources(delta int) int {
	g.resources += delta
	return g.resources
}

// Stats returns the session counters and current entity counts.
func (g *Game) Stats() Stats {
	s := g.stats
	s.GameTime = g.ECS.GameTime
	s.Enemies = len(g.ECS.EnemyIDs())
	s.Towers = len(g.ECS.TowerIDs())
	return s
}

// --- Speed and pause ---

// HandleSpeedClick cycles the speed multiplier x1 -> x2 -> x4 -> x1.
func (g *Game) HandleSpeedClick() int {
	g.speedStep = (g.speedStep + 1) % len(config.SpeedMultipliers)
	g.SpeedMultiplier = config.SpeedMultipliers[g.speedStep]
	return g.speedStep
}

// SpeedStep returns the index into config.SpeedMultipliers.
func (g *Game) SpeedStep() int {
	return g.speedStep
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Close logs the session summary.
func (g *Game) Close() {
	s := g.Stats()
	g.logger.Info(context.Background(), "session finished",
		logging.Float("game_time", s.GameTime),
		logging.Int("spawned", s.Spawned),
		logging.Int("killed", s.Killed),
		logging.Int("reached_goal", s.ReachedGoal),
		logging.Int("towers", s.Towers),
	)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		l.game.stats.Spawned++
	case event.EnemyKilled:
		l.game.stats.Killed++
	case event.EnemyReachedGoal:
		l.game.stats.ReachedGoal++
	case event.TowerPlaced:
		l.game.stats.TowersPlaced++
	}
}
