package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"path-tower-defense/internal/event"
)

// SimCollector bundles Prometheus metrics for the simulation. It subscribes to
// the game's event dispatcher for the counters, and the tick driver feeds the
// gauges and the tick histogram directly.
type SimCollector struct {
	gatherer prometheus.Gatherer

	EnemiesSpawned     prometheus.Counter
	EnemiesKilled      prometheus.Counter
	EnemiesReachedGoal prometheus.Counter
	TowersPlaced       prometheus.Counter

	LiveEnemies prometheus.Gauge
	Towers      prometheus.Gauge

	TickDuration prometheus.Histogram
}

// NewSimCollector registers simulation metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil. Calling it
// twice against one registry returns the already registered collectors, so a
// restarted session keeps counting where the previous one stopped.
func NewSimCollector(reg prometheus.Registerer) (*SimCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	counter := func(name, help string) (prometheus.Counter, error) {
		return registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help}), name)
	}
	gauge := func(name, help string) (prometheus.Gauge, error) {
		return registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help}), name)
	}

	spawned, err := counter("td_enemies_spawned_total", "Total number of enemies created by spawners.")
	if err != nil {
		return nil, err
	}
	killed, err := counter("td_enemies_killed_total", "Total number of enemies removed with health at or below zero.")
	if err != nil {
		return nil, err
	}
	reached, err := counter("td_enemies_reached_goal_total", "Total number of enemies that walked past the last waypoint.")
	if err != nil {
		return nil, err
	}
	placed, err := counter("td_towers_placed_total", "Total number of towers created, seeded or placed by input.")
	if err != nil {
		return nil, err
	}
	live, err := gauge("td_live_enemies", "Current number of enemies on the field.")
	if err != nil {
		return nil, err
	}
	towers, err := gauge("td_towers", "Current number of towers on the field.")
	if err != nil {
		return nil, err
	}
	tick, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "td_tick_duration_seconds",
		Help:    "Wall time spent in one simulation tick.",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	}), "td_tick_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &SimCollector{
		gatherer:           gatherer,
		EnemiesSpawned:     spawned,
		EnemiesKilled:      killed,
		EnemiesReachedGoal: reached,
		TowersPlaced:       placed,
		LiveEnemies:        live,
		Towers:             towers,
		TickDuration:       tick,
	}, nil
}

// Subscribe wires the counters to the dispatcher.
func (c *SimCollector) Subscribe(d *event.Dispatcher) {
	if c == nil || d == nil {
		return
	}
	d.SubscribeAll(c, event.EnemySpawned, event.EnemyKilled, event.EnemyReachedGoal, event.TowerPlaced)
}

// OnEvent implements event.Listener.
func (c *SimCollector) OnEvent(e event.Event) {
	if c == nil {
		return
	}
	switch e.Type {
	case event.EnemySpawned:
		c.EnemiesSpawned.Inc()
	case event.EnemyKilled:
		c.EnemiesKilled.Inc()
	case event.EnemyReachedGoal:
		c.EnemiesReachedGoal.Inc()
	case event.TowerPlaced:
		c.TowersPlaced.Inc()
	}
}

// ObserveTick records one tick's wall time and the entity counts after it.
func (c *SimCollector) ObserveTick(d time.Duration, enemies, towers int) {
	if c == nil {
		return
	}
	c.TickDuration.Observe(d.Seconds())
	c.LiveEnemies.Set(float64(enemies))
	c.Towers.Set(float64(towers))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SimCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, histogram prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(histogram); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return histogram, nil
}
