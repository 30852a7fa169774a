// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются в порядке
// подписки, в той же горутине, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
	pending   []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener на несколько типов сразу.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события. ListenerFunc сравнить нельзя, такие
// подписки живут до конца сессии.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			kept := make([]Listener, 0, len(listeners)-1)
			kept = append(kept, listeners[:i]...)
			d.listeners[eventType] = append(kept, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — немедленная отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Queue откладывает событие до Flush. Системы внутри тика ставят события в
// очередь, чтобы подписчики не видели состояние посреди прохода.
func (d *Dispatcher) Queue(event Event) {
	d.pending = append(d.pending, event)
}

// Flush рассылает отложенные события в порядке постановки.
func (d *Dispatcher) Flush() {
	for i := 0; i < len(d.pending); i++ {
		d.Dispatch(d.pending[i])
	}
	d.pending = d.pending[:0]
}
