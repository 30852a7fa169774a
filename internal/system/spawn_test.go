package system

import (
	"math"
	"testing"

	"path-tower-defense/internal/config"
	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/event"
)

func newSpawner(t *testing.T, catchUp bool) (*entity.ECS, *SpawnSystem, *event.Dispatcher) {
	t.Helper()
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	cfg := config.Default()
	ss := NewSpawnSystem(ecs, lPath(), cfg.Enemy, d)
	ss.CreateSpawner(config.SpawnerConfig{Interval: 1.5, CatchUp: catchUp})
	return ecs, ss, d
}

func TestSpawnCadence(t *testing.T) {
	cases := []struct {
		name     string
		dt       float64
		duration float64
	}{
		{"60fps_10s", 1.0 / 60, 10},
		{"tenth_30s", 0.1, 30},
		{"uneven_7s", 0.037, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ecs, ss, _ := newSpawner(t, false)
			total := 0
			steps := int(math.Round(c.duration / c.dt))
			for i := 0; i < steps; i++ {
				total += ss.Update(c.dt)
			}
			want := int(math.Floor(float64(steps) * c.dt / 1.5))
			if total < want-1 || total > want+1 {
				t.Fatalf("spawned %d, want %d±1", total, want)
			}
			if len(ecs.EnemyIDs()) != total {
				t.Fatalf("EnemyIDs = %d, spawned %d", len(ecs.EnemyIDs()), total)
			}
		})
	}
}

func TestSpawnLongTickPolicy(t *testing.T) {
	cases := []struct {
		name    string
		catchUp bool
		want    int
	}{
		{"once_per_tick", false, 1},
		{"catch_up", true, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ecs, ss, _ := newSpawner(t, c.catchUp)
			if got := ss.Update(4.6); got != c.want {
				t.Fatalf("spawned %d, want %d", got, c.want)
			}
			for _, sp := range ecs.Spawners {
				if math.Abs(sp.Elapsed-0.1) > 1e-9 {
					t.Fatalf("remainder = %v, want 0.1", sp.Elapsed)
				}
			}
			// Remainder carries: 1.45 more seconds completes the next period.
			if got := ss.Update(1.45); got != 1 {
				t.Fatalf("spawned %d after carry, want 1", got)
			}
		})
	}
}

func TestSpawnCatchUpIsCapped(t *testing.T) {
	ecs, ss, _ := newSpawner(t, true)
	if got := ss.Update(1e12); got != MaxCatchUp {
		t.Fatalf("spawned %d on a huge tick, want %d", got, MaxCatchUp)
	}
	for _, sp := range ecs.Spawners {
		if sp.Elapsed < 0 || sp.Elapsed >= 1.5 {
			t.Fatalf("remainder = %v, want within [0, 1.5)", sp.Elapsed)
		}
	}
	if len(ecs.EnemyIDs()) != MaxCatchUp {
		t.Fatalf("EnemyIDs = %d, want %d", len(ecs.EnemyIDs()), MaxCatchUp)
	}
}

func TestSpawnIgnoresBadDelta(t *testing.T) {
	for _, catchUp := range []bool{false, true} {
		ecs, ss, _ := newSpawner(t, catchUp)
		for _, dt := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), -3} {
			if got := ss.Update(dt); got != 0 {
				t.Fatalf("catchUp=%v: Update(%v) spawned %d", catchUp, dt, got)
			}
		}
		for _, sp := range ecs.Spawners {
			if sp.Elapsed != 0 {
				t.Fatalf("catchUp=%v: elapsed = %v after bad deltas", catchUp, sp.Elapsed)
			}
		}
		// Cadence is intact: ten short ticks stay below one period.
		total := 0
		for i := 0; i < 10; i++ {
			total += ss.Update(0.01)
		}
		if total != 0 {
			t.Fatalf("catchUp=%v: spawned %d in 0.1s", catchUp, total)
		}
	}
}

func TestSpawnedEnemyState(t *testing.T) {
	ecs, ss, d := newSpawner(t, false)
	var spawnedEvents int
	d.Subscribe(event.EnemySpawned, event.ListenerFunc(func(event.Event) { spawnedEvents++ }))

	ss.Update(1.5)
	d.Flush()

	ids := ecs.EnemyIDs()
	if len(ids) != 1 || spawnedEvents != 1 {
		t.Fatalf("enemies=%d events=%d, want 1 and 1", len(ids), spawnedEvents)
	}
	id := ids[0]
	if pos := ecs.Positions[id]; pos.X != 0 || pos.Y != 0 {
		t.Fatalf("spawn position = %+v, want first waypoint", *pos)
	}
	if ecs.PathMovers[id].Index != 0 {
		t.Fatalf("index = %d, want 0", ecs.PathMovers[id].Index)
	}
	if ecs.Healths[id].Value != 1000 {
		t.Fatalf("health = %v, want 1000", ecs.Healths[id].Value)
	}
	// Second waypoint is (100, 0): facing +X.
	if rot := ecs.Rotations[id].Angle; !approx(rot, -math.Pi/2) {
		t.Fatalf("rotation = %v, want -π/2", rot)
	}
	if ecs.Velocities[id].Speed != 100 {
		t.Fatalf("speed = %v, want 100", ecs.Velocities[id].Speed)
	}
}

func TestSpawnZeroDelta(t *testing.T) {
	_, ss, _ := newSpawner(t, false)
	for i := 0; i < 10; i++ {
		if got := ss.Update(0); got != 0 {
			t.Fatalf("zero dt spawned %d", got)
		}
	}
}
