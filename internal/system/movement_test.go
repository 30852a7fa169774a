package system

import (
	"math"
	"testing"

	"path-tower-defense/internal/entity"
	"path-tower-defense/pkg/waypath"
)

func TestMovementAdvancesAndSteers(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, lPath(), 1.0)
	id := addEnemy(t, ecs, 0, 0, 1000, 0)

	reached := ms.Update(0.1)
	if len(reached) != 0 {
		t.Fatalf("reached = %v, want none", reached)
	}
	if got := ecs.PathMovers[id].Index; got != 1 {
		t.Fatalf("index = %d, want 1 (enemy started on waypoint 0)", got)
	}
	pos := ecs.Positions[id]
	if !approx(pos.X, 10) || !approx(pos.Y, 0) {
		t.Fatalf("pos = %+v, want (10, 0)", *pos)
	}
	if rot := ecs.Rotations[id].Angle; !approx(rot, -math.Pi/2) {
		t.Fatalf("rotation = %v, want -π/2 (facing +X)", rot)
	}
}

func TestMovementNeverOvershootsWaypoint(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, lPath(), 1.0)
	id := addEnemy(t, ecs, 95, 0, 1000, 1)

	ms.Update(1.0)
	pos := ecs.Positions[id]
	if !approx(pos.X, 100) || !approx(pos.Y, 0) {
		t.Fatalf("pos = %+v, want snapped to (100, 0)", *pos)
	}

	ms.Update(0.05)
	if got := ecs.PathMovers[id].Index; got != 2 {
		t.Fatalf("index = %d, want 2", got)
	}
	if pos := ecs.Positions[id]; !approx(pos.X, 100) || !approx(pos.Y, 5) {
		t.Fatalf("pos = %+v, want (100, 5)", *pos)
	}
	if rot := ecs.Rotations[id].Angle; !approx(rot, 0) {
		t.Fatalf("rotation = %v, want 0 (facing +Y)", rot)
	}
}

func TestMovementMonotonicProgressToGoal(t *testing.T) {
	ecs := entity.NewECS()
	path := lPath()
	ms := NewMovementSystem(ecs, path, 1.0)
	id := addEnemy(t, ecs, 0, 0, 1000, 0)

	last := 0
	for tick := 0; tick < 1000; tick++ {
		reached := ms.Update(1.0 / 60.0)
		idx := ecs.PathMovers[id].Index
		if idx < last {
			t.Fatalf("tick %d: index went back from %d to %d", tick, last, idx)
		}
		if idx > path.Len() {
			t.Fatalf("tick %d: index %d exceeds path length %d", tick, idx, path.Len())
		}
		last = idx
		if len(reached) > 0 {
			if reached[0] != id || idx != path.Len() {
				t.Fatalf("tick %d: reached = %v with index %d", tick, reached, idx)
			}
			return
		}
	}
	t.Fatalf("enemy never reached the goal, index %d", last)
}

func TestMovementEmptyPathReportsGoalWithoutIndexing(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, waypath.Path{}, 1.0)
	id := addEnemy(t, ecs, 3, 4, 1000, 0)

	reached := ms.Update(0.1)
	if len(reached) != 1 || reached[0] != id {
		t.Fatalf("reached = %v, want [%d]", reached, id)
	}
}

func TestMovementZeroDeltaStaysPut(t *testing.T) {
	ecs := entity.NewECS()
	ms := NewMovementSystem(ecs, lPath(), 1.0)
	id := addEnemy(t, ecs, 50, 0, 1000, 1)
	ecs.Rotations[id].Angle = 1.25

	ms.Update(0)
	if pos := ecs.Positions[id]; pos.X != 50 || pos.Y != 0 {
		t.Fatalf("pos = %+v, want unchanged", *pos)
	}
	if rot := ecs.Rotations[id].Angle; !approx(rot, -math.Pi/2) {
		t.Fatalf("rotation = %v, want -π/2", rot)
	}
}
