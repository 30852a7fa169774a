package system

import (
	"math"
	"testing"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/types"
	"path-tower-defense/pkg/utils"
	"path-tower-defense/pkg/waypath"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// lPath is (0,0) -> (100,0) -> (100,100).
func lPath() waypath.Path {
	return waypath.New([]utils.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
}

func addEnemy(t *testing.T, ecs *entity.ECS, x, y, health float64, index int) types.EntityID {
	t.Helper()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: 100}
	ecs.Rotations[id] = &component.Rotation{}
	ecs.PathMovers[id] = &component.PathMover{Index: index}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.AddEnemy(id, &component.Enemy{})
	return id
}

func addTower(t *testing.T, ecs *entity.ECS, x, y, rangeUnits, dps float64) types.EntityID {
	t.Helper()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Combats[id] = &component.Combat{Range: rangeUnits, DPS: dps}
	ecs.AddTower(id, &component.Tower{})
	return id
}
