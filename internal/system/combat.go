package system

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/types"
	"path-tower-defense/pkg/utils"
)

// Engagement — одна башня, бьющая одну цель в этом тике.
type Engagement struct {
	Tower    types.EntityID
	Enemy    types.EntityID
	Distance float64
	Damage   float64
}

type pick struct {
	enemy    types.EntityID
	distance float64
}

// CombatSystem управляет атакой башен: каждая башня каждый тик заново ищет
// ближайшего врага и, если он в радиусе, непрерывно снимает ему здоровье.
// Читает: Towers, Combats, Positions, EnemyIDs. Пишет: Healths.
type CombatSystem struct {
	ecs               *entity.ECS
	parallelThreshold int
	picks             []pick
}

// NewCombatSystem returns a combat system. Target scans run concurrently once
// the tower count reaches parallelThreshold; 0 keeps them sequential.
func NewCombatSystem(ecs *entity.ECS, parallelThreshold int) *CombatSystem {
	return &CombatSystem{
		ecs:               ecs,
		parallelThreshold: parallelThreshold,
	}
}

// Update applies DPS × deltaTime from every tower to its nearest enemy within
// range and returns the engagements in tower order.
//
// Scanning only reads positions. Damage is applied afterwards in tower order,
// so the result is the same whether or not the scans ran in parallel.
func (s *CombatSystem) Update(deltaTime float64) []Engagement {
	towers := s.ecs.TowerIDs()
	if len(towers) == 0 || len(s.ecs.EnemyIDs()) == 0 {
		return nil
	}

	if cap(s.picks) < len(towers) {
		s.picks = make([]pick, len(towers))
	}
	picks := s.picks[:len(towers)]

	if s.parallelThreshold > 0 && len(towers) >= s.parallelThreshold {
		s.scanParallel(towers, picks)
	} else {
		s.scan(towers, picks)
	}

	var engagements []Engagement
	for i, towerID := range towers {
		p := picks[i]
		combat, ok := s.ecs.Combats[towerID]
		if !ok || p.enemy == types.NoEntity || p.distance > combat.Range {
			continue
		}
		health, ok := s.ecs.Healths[p.enemy]
		if !ok {
			continue
		}
		damage := combat.DPS * deltaTime
		health.Value -= damage
		engagements = append(engagements, Engagement{
			Tower:    towerID,
			Enemy:    p.enemy,
			Distance: p.distance,
			Damage:   damage,
		})
	}
	return engagements
}

func (s *CombatSystem) scan(towers []types.EntityID, picks []pick) {
	for i, towerID := range towers {
		picks[i] = s.findNearestEnemy(towerID)
	}
}

func (s *CombatSystem) scanParallel(towers []types.EntityID, picks []pick) {
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(towers) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(towers); start += chunk {
		start := start
		end := min(start+chunk, len(towers))
		g.Go(func() error {
			for i := start; i < end; i++ {
				picks[i] = s.findNearestEnemy(towers[i])
			}
			return nil
		})
	}
	_ = g.Wait()
}

// findNearestEnemy returns the closest live enemy to the tower. NaN distances
// never win, and on a tie the earlier spawned enemy is kept.
func (s *CombatSystem) findNearestEnemy(towerID types.EntityID) pick {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return pick{distance: math.Inf(1)}
	}
	return nearest(s.ecs, utils.Vec2{X: towerPos.X, Y: towerPos.Y})
}

func nearest(ecs *entity.ECS, from utils.Vec2) pick {
	best := pick{distance: math.Inf(1)}
	for _, enemyID := range ecs.EnemyIDs() {
		enemyPos, ok := ecs.Positions[enemyID]
		if !ok {
			continue
		}
		d := from.Distance(utils.Vec2{X: enemyPos.X, Y: enemyPos.Y})
		if math.IsNaN(d) {
			continue
		}
		if best.enemy == types.NoEntity || d < best.distance {
			best = pick{enemy: enemyID, distance: d}
		}
	}
	return best
}

// NearestEnemy exposes the target scan for a single point.
func NearestEnemy(ecs *entity.ECS, x, y float64) (types.EntityID, float64) {
	p := nearest(ecs, utils.Vec2{X: x, Y: y})
	return p.enemy, p.distance
}

