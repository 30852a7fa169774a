// internal/system/spawn.go
package system

import (
	"math"
	"slices"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/event"
	"path-tower-defense/internal/types"
	"path-tower-defense/pkg/utils"
	"path-tower-defense/pkg/waypath"
)

// MaxCatchUp ограничивает число врагов, которых один спавнер создаёт за тик
// в режиме CatchUp.
const MaxCatchUp = 16

// SpawnSystem тикает таймеры спавнеров и создаёт врагов в начале пути.
// Пишет: Spawners (таймер) и компоненты новых врагов.
type SpawnSystem struct {
	ecs             *entity.ECS
	path            waypath.Path
	enemy           config.EnemyConfig
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, path waypath.Path, enemy config.EnemyConfig, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		path:            path,
		enemy:           enemy,
		eventDispatcher: eventDispatcher,
	}
}

// CreateSpawner places a spawner on the first waypoint.
func (s *SpawnSystem) CreateSpawner(cfg config.SpawnerConfig) types.EntityID {
	id := s.ecs.NewEntity()
	first := s.path.First()
	s.ecs.Positions[id] = &component.Position{X: first.X, Y: first.Y}
	s.ecs.Spawners[id] = &component.Spawner{
		Interval: cfg.Interval,
		CatchUp:  cfg.CatchUp,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.SpawnerColor,
		Radius: 6,
	}
	return id
}

// Update advances every spawner timer and returns how many enemies were created.
//
// A repeating timer keeps the remainder past the last period boundary. When
// one tick crosses several boundaries only one enemy is created unless the
// spawner has CatchUp set; catch-up is capped at MaxCatchUp per tick and the
// periods beyond the cap are dropped. Non-finite or negative deltaTime is
// ignored.
func (s *SpawnSystem) Update(deltaTime float64) int {
	if !(deltaTime >= 0) || math.IsInf(deltaTime, 0) {
		return 0
	}
	spawned := 0
	ids := make([]types.EntityID, 0, len(s.ecs.Spawners))
	for id := range s.ecs.Spawners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		spawner := s.ecs.Spawners[id]
		pos, ok := s.ecs.Positions[id]
		if !ok || spawner.Interval <= 0 {
			continue
		}

		spawner.Elapsed += deltaTime
		if spawner.Elapsed < spawner.Interval {
			continue
		}
		periods := math.Floor(spawner.Elapsed / spawner.Interval)
		spawner.Elapsed = math.Mod(spawner.Elapsed, spawner.Interval)

		count := 1
		if spawner.CatchUp {
			count = int(min(periods, MaxCatchUp))
		}
		for i := 0; i < count; i++ {
			s.spawnEnemy(utils.Vec2{X: pos.X, Y: pos.Y})
			spawned++
		}
	}
	return spawned
}

func (s *SpawnSystem) spawnEnemy(at utils.Vec2) types.EntityID {
	facing := 0.0
	if s.path.Len() > 1 {
		facing = s.path.At(1).Sub(at).NormalizeOrZero().AngleFromUp()
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: s.enemy.Speed}
	s.ecs.Rotations[id] = &component.Rotation{Angle: facing}
	s.ecs.PathMovers[id] = &component.PathMover{Index: 0}
	s.ecs.Healths[id] = &component.Health{Value: s.enemy.StartHealth}
	s.ecs.Scales[id] = &component.Scale{Value: s.enemy.MaxScale}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    config.EnemyRadius,
		HasStroke: true,
	}
	s.ecs.AddEnemy(id, &component.Enemy{SpawnedAt: s.ecs.GameTime})

	if s.eventDispatcher != nil {
		s.eventDispatcher.Queue(event.Event{Type: event.EnemySpawned, Data: id})
	}
	return id
}
