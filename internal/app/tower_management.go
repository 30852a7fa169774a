// internal/app/tower_management.go
package app

import (
	"context"
	"errors"
	"math"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/logging"
	"path-tower-defense/internal/types"
	"path-tower-defense/pkg/utils"
)

// ErrInvalidPosition is returned by PlaceTower for NaN or infinite coordinates.
var ErrInvalidPosition = errors.New("invalid tower position")

// TowerSnapshot is a read-only copy of one tower.
type TowerSnapshot struct {
	ID     types.EntityID
	X, Y   float64
	Range  float64
	DPS    float64
	Origin component.TowerOrigin
	Look   component.Renderable
}

// PlaceTower creates a tower at world coordinates (x, y). Any finite position
// is accepted, towers may overlap each other and the path.
func (g *Game) PlaceTower(x, y float64) (types.EntityID, error) {
	pos := utils.Vec2{X: x, Y: y}
	if !pos.IsFinite() {
		return types.NoEntity, ErrInvalidPosition
	}
	id := g.TowerSystem.CreateTower(pos, component.TowerPlaced)
	g.logger.Debug(context.Background(), "tower placed",
		logging.Uint64("id", uint64(id)),
		logging.Float("x", x),
		logging.Float("y", y),
	)
	return id, nil
}

// Towers returns every tower in creation order.
func (g *Game) Towers() []TowerSnapshot {
	ids := g.ECS.TowerIDs()
	out := make([]TowerSnapshot, 0, len(ids))
	for _, id := range ids {
		s := TowerSnapshot{ID: id}
		if pos, ok := g.ECS.Positions[id]; ok {
			s.X, s.Y = pos.X, pos.Y
		}
		if c, ok := g.ECS.Combats[id]; ok {
			s.Range, s.DPS = c.Range, c.DPS
		}
		if t, ok := g.ECS.Towers[id]; ok {
			s.Origin = t.Origin
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			s.Look = *r
		}
		out = append(out, s)
	}
	return out
}

// CanPlaceByClick reports whether the input layer may call PlaceTower under the
// session's placement policy.
func (g *Game) CanPlaceByClick() bool {
	return g.Config.ClickPlaceTowers()
}

// TowerNear returns the tower whose centre is within radius of (x, y), or
// NoEntity. Used by frontends for hover highlighting.
func (g *Game) TowerNear(x, y, radius float64) types.EntityID {
	at := utils.Vec2{X: x, Y: y}
	best, bestDist := types.NoEntity, math.Inf(1)
	for _, id := range g.ECS.TowerIDs() {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		d := at.Distance(utils.Vec2{X: pos.X, Y: pos.Y})
		if d <= radius && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}
