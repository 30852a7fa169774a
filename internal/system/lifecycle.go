package system

import (
	"slices"

	"path-tower-defense/internal/entity"
	"path-tower-defense/internal/event"
	"path-tower-defense/internal/types"
)

// RemovalReason says why an enemy left the field.
type RemovalReason int

const (
	ReasonKilled RemovalReason = iota
	ReasonReachedGoal
)

func (r RemovalReason) String() string {
	switch r {
	case ReasonKilled:
		return "killed"
	case ReasonReachedGoal:
		return "reached_goal"
	default:
		return "unknown"
	}
}

// Removal is one enemy taken off the field this tick.
type Removal struct {
	ID     types.EntityID
	Reason RemovalReason
}

// LifecycleSystem удаляет врагов в конце тика. Заявки на удаление копятся в
// течение тика, а применяются один раз в Update, поэтому ни одна система не
// теряет сущность посреди своего прохода.
type LifecycleSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	reachedGoal     map[types.EntityID]struct{}
	requested       map[types.EntityID]struct{}
}

func NewLifecycleSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		reachedGoal:     make(map[types.EntityID]struct{}),
		requested:       make(map[types.EntityID]struct{}),
	}
}

// MarkReachedGoal records enemies that walked off the end of the path.
func (s *LifecycleSystem) MarkReachedGoal(ids ...types.EntityID) {
	for _, id := range ids {
		s.reachedGoal[id] = struct{}{}
	}
}

// RequestRemoval queues an entity for removal at the end of the tick. Unknown
// or already removed IDs are ignored when the queue is applied.
func (s *LifecycleSystem) RequestRemoval(id types.EntityID) {
	s.requested[id] = struct{}{}
}

// Update removes every enemy with health <= 0 and every enemy marked as having
// reached the goal, in ID order. An enemy meeting both conditions is removed
// once and reported as killed.
func (s *LifecycleSystem) Update() []Removal {
	var removals []Removal
	seen := make(map[types.EntityID]struct{})

	for _, id := range s.ecs.EnemyIDs() {
		_, reached := s.reachedGoal[id]
		dead := false
		if h, ok := s.ecs.Healths[id]; ok && h.Value <= 0 {
			dead = true
		}
		switch {
		case dead:
			removals = append(removals, Removal{ID: id, Reason: ReasonKilled})
		case reached:
			removals = append(removals, Removal{ID: id, Reason: ReasonReachedGoal})
		default:
			continue
		}
		seen[id] = struct{}{}
	}

	var extra []types.EntityID
	for id := range s.requested {
		if _, ok := seen[id]; !ok {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)

	for _, r := range removals {
		if !s.ecs.DestroyEntity(r.ID) {
			continue
		}
		if s.eventDispatcher == nil {
			continue
		}
		eventType := event.EnemyKilled
		if r.Reason == ReasonReachedGoal {
			eventType = event.EnemyReachedGoal
		}
		s.eventDispatcher.Queue(event.Event{Type: eventType, Data: r.ID})
	}
	for _, id := range extra {
		s.ecs.DestroyEntity(id)
	}

	clear(s.reachedGoal)
	clear(s.requested)
	return removals
}
