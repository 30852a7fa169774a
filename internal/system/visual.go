// internal/system/visual.go
package system

import (
	"path-tower-defense/internal/component"
	"path-tower-defense/internal/entity"
)

// Scale переводит здоровье в размер спрайта: h0 даёт maxScale, 0 даёт minScale.
// Значения вне [0, h0] продолжают прямую, без ограничения.
func Scale(health, startHealth, minScale, maxScale float64) float64 {
	return health/(startHealth/(maxScale-minScale)) + minScale
}

// VisualSystem пересчитывает Scale врагов по их здоровью.
type VisualSystem struct {
	ecs         *entity.ECS
	startHealth float64
	minScale    float64
	maxScale    float64
}

func NewVisualSystem(ecs *entity.ECS, startHealth, minScale, maxScale float64) *VisualSystem {
	return &VisualSystem{
		ecs:         ecs,
		startHealth: startHealth,
		minScale:    minScale,
		maxScale:    maxScale,
	}
}

func (s *VisualSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		health, ok := s.ecs.Healths[id]
		if !ok {
			continue
		}
		scale, ok := s.ecs.Scales[id]
		if !ok {
			scale = &component.Scale{}
			s.ecs.Scales[id] = scale
		}
		scale.Value = Scale(health.Value, s.startHealth, s.minScale, s.maxScale)
	}
}
