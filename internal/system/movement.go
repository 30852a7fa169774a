// internal/system/movement.go
package system

import (
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/types"
	"path-tower-defense/pkg/utils"
	"path-tower-defense/pkg/waypath"
)

// MovementSystem ведёт врагов по точкам пути.
// Читает: Velocities. Пишет: Positions, PathMovers, Rotations.
type MovementSystem struct {
	ecs     *entity.ECS
	path    waypath.Path
	epsilon float64
}

func NewMovementSystem(ecs *entity.ECS, path waypath.Path, epsilon float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, epsilon: epsilon}
}

// Update moves every enemy one step and returns the enemies that walked past
// the last waypoint this tick. Those enemies are not moved; removing them is
// the lifecycle system's job.
func (s *MovementSystem) Update(deltaTime float64) []types.EntityID {
	var reached []types.EntityID
	n := s.path.Len()

	for _, id := range s.ecs.EnemyIDs() {
		pos, hasPos := s.ecs.Positions[id]
		mover, hasMover := s.ecs.PathMovers[id]
		if !hasPos || !hasMover {
			continue
		}
		// Конец пути проверяем до обращения по индексу.
		if mover.Index >= n {
			reached = append(reached, id)
			continue
		}

		current := utils.Vec2{X: pos.X, Y: pos.Y}
		target := s.path.At(mover.Index)
		if current.Distance(target) <= s.epsilon {
			mover.Index++
			if mover.Index == n {
				reached = append(reached, id)
				continue
			}
			target = s.path.At(mover.Index)
		}

		speed := 0.0
		if vel, ok := s.ecs.Velocities[id]; ok {
			speed = vel.Speed
		}

		offset := target.Sub(current)
		direction := offset.NormalizeOrZero()
		step := speed * deltaTime
		// Не проскакиваем точку: иначе при большом шаге враг колеблется вокруг неё.
		if dist := offset.Length(); step > dist {
			step = dist
		}
		next := current.Add(direction.Scale(step))
		pos.X, pos.Y = next.X, next.Y

		if rot, ok := s.ecs.Rotations[id]; ok && direction != (utils.Vec2{}) {
			rot.Angle = direction.AngleFromUp()
		}
	}
	return reached
}
