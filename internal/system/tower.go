// internal/system/tower.go
package system

import (
	"path-tower-defense/internal/component"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/event"
	"path-tower-defense/internal/types"
	"path-tower-defense/internal/utils"
	vec "path-tower-defense/pkg/utils"
	"path-tower-defense/pkg/waypath"
)

// TowerSystem создаёт башни. Все башни одинаковые: радиус и DPS берутся из
// конфига. Башни не двигаются и не удаляются до конца сессии.
type TowerSystem struct {
	ecs             *entity.ECS
	cfg             config.TowerConfig
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(ecs *entity.ECS, cfg config.TowerConfig, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{
		ecs:             ecs,
		cfg:             cfg,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// CreateTower places a tower at pos. The caller validates pos.
func (s *TowerSystem) CreateTower(pos vec.Vec2, origin component.TowerOrigin) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Combats[id] = &component.Combat{Range: s.cfg.Range, DPS: s.cfg.DPS}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.TowerColor,
		Radius:    config.TowerRadius,
		HasStroke: false,
	}
	s.ecs.AddTower(id, &component.Tower{Origin: origin})

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	}
	return id
}

// SeedAlongPath places StartingCount towers, each next to a random waypoint,
// pushed off it by OffsetMin..OffsetMax units in a random direction.
func (s *TowerSystem) SeedAlongPath(path waypath.Path) []types.EntityID {
	if path.Len() == 0 || s.cfg.StartingCount <= 0 {
		return nil
	}
	ids := make([]types.EntityID, 0, s.cfg.StartingCount)
	for i := 0; i < s.cfg.StartingCount; i++ {
		point := path.At(s.rng.Intn(path.Len()))
		length := s.rng.Range(s.cfg.OffsetMin, s.cfg.OffsetMax)
		offset := vec.FromAngle(s.rng.Angle()).Scale(length)
		ids = append(ids, s.CreateTower(point.Add(offset), component.TowerSeeded))
	}
	return ids
}
