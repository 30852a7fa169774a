package system

import (
	"testing"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/event"
	"path-tower-defense/internal/utils"
	vec "path-tower-defense/pkg/utils"
	"path-tower-defense/pkg/waypath"
)

func newTowerSystem(ecs *entity.ECS, count int) (*TowerSystem, *event.Dispatcher) {
	cfg := config.Default().Towers
	cfg.StartingCount = count
	d := event.NewDispatcher()
	return NewTowerSystem(ecs, cfg, utils.NewPRNGService(42), d), d
}

func TestSeedAlongPathOffsets(t *testing.T) {
	ecs := entity.NewECS()
	ts, _ := newTowerSystem(ecs, 25)
	path := lPath()

	ids := ts.SeedAlongPath(path)
	if len(ids) != 25 || len(ecs.TowerIDs()) != 25 {
		t.Fatalf("seeded %d towers (%d registered), want 25", len(ids), len(ecs.TowerIDs()))
	}
	for _, id := range ids {
		pos := ecs.Positions[id]
		at := vec.Vec2{X: pos.X, Y: pos.Y}
		ok := false
		for _, p := range path.Points() {
			d := at.Distance(p)
			if d >= 50-tolerance && d < 100+tolerance {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("tower %d at %+v is not 50..100 from any waypoint", id, at)
		}
		if ecs.Towers[id].Origin != component.TowerSeeded {
			t.Fatalf("tower %d origin = %v, want seeded", id, ecs.Towers[id].Origin)
		}
		if c := ecs.Combats[id]; c.Range != 150 || c.DPS != 100 {
			t.Fatalf("tower %d combat = %+v", id, *c)
		}
	}
}

func TestSeedAlongPathNothingToDo(t *testing.T) {
	cases := []struct {
		name  string
		count int
		path  waypath.Path
	}{
		{"zero_count", 0, lPath()},
		{"negative_count", -3, lPath()},
		{"empty_path", 5, waypath.Path{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ecs := entity.NewECS()
			ts, _ := newTowerSystem(ecs, c.count)
			if ids := ts.SeedAlongPath(c.path); len(ids) != 0 {
				t.Fatalf("seeded %v, want none", ids)
			}
			if len(ecs.TowerIDs()) != 0 {
				t.Fatalf("towers registered: %v", ecs.TowerIDs())
			}
		})
	}
}

func TestCreateTowerDispatchesPlaced(t *testing.T) {
	ecs := entity.NewECS()
	ts, d := newTowerSystem(ecs, 0)
	var placed []event.Event
	d.Subscribe(event.TowerPlaced, event.ListenerFunc(func(e event.Event) { placed = append(placed, e) }))

	id := ts.CreateTower(vec.Vec2{X: -12, Y: 40}, component.TowerPlaced)

	if len(placed) != 1 || placed[0].Data != id {
		t.Fatalf("events = %+v, want one TowerPlaced for %d", placed, id)
	}
	if pos := ecs.Positions[id]; pos.X != -12 || pos.Y != 40 {
		t.Fatalf("pos = %+v", *pos)
	}
	if ecs.Towers[id].Origin != component.TowerPlaced {
		t.Fatalf("origin = %v, want placed", ecs.Towers[id].Origin)
	}
}
