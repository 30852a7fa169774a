package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "b") }))
	d.Subscribe(TowerPlaced, ListenerFunc(func(Event) { order = append(order, "other") }))

	d.Dispatch(Event{Type: EnemyKilled, Data: 7})

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
}

func TestQueueDefersUntilFlush(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, EnemySpawned, EnemyReachedGoal)

	d.Queue(Event{Type: EnemySpawned, Data: 1})
	d.Queue(Event{Type: EnemyReachedGoal, Data: 2})
	if len(r.got) != 0 {
		t.Fatalf("queued events delivered before Flush: %v", r.got)
	}

	d.Flush()
	if len(r.got) != 2 || r.got[0].Type != EnemySpawned || r.got[1].Type != EnemyReachedGoal {
		t.Fatalf("got %v", r.got)
	}

	d.Flush()
	if len(r.got) != 2 {
		t.Fatalf("second Flush re-delivered events: %v", r.got)
	}
}

func TestFlushDeliversEventsQueuedByListeners(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)
	d.Subscribe(EnemySpawned, ListenerFunc(func(Event) {
		d.Queue(Event{Type: EnemyKilled})
	}))

	d.Queue(Event{Type: EnemySpawned})
	d.Flush()
	if len(r.got) != 1 {
		t.Fatalf("event queued during Flush was not delivered: %v", r.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TowerPlaced, a)
	d.Subscribe(TowerPlaced, b)
	d.Unsubscribe(TowerPlaced, a)
	d.Unsubscribe(EnemyKilled, a)

	d.Dispatch(Event{Type: TowerPlaced})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("a=%d b=%d, want 0 and 1", len(a.got), len(b.got))
	}
}
