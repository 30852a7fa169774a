// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"path-tower-defense/internal/config"
	"path-tower-defense/internal/logging"
	"path-tower-defense/internal/observability"
	"path-tower-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (watched for changes)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	debugAddr := flag.String("debug-addr", "localhost:6060", "pprof and /metrics listen address, empty to disable")
	flag.Parse()

	logger := logging.NewFromEnv()
	ctx := context.Background()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	metrics, err := observability.NewSimCollector(nil)
	if err != nil {
		log.Fatal(err)
	}
	if *debugAddr != "" {
		http.Handle("/metrics", metrics.Handler())
		go func() {
			logger.Info(ctx, "debug server listening", logging.String("addr", *debugAddr))
			if err := http.ListenAndServe(*debugAddr, nil); err != nil {
				logger.Warn(ctx, "debug server stopped", logging.Err(err))
			}
		}()
	}

	var watcher *config.Watcher
	if *configPath != "" {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			logger.Warn(ctx, "config watch disabled", logging.Err(err))
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, state.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Watcher: watcher,
	})
	defer gameState.Close()
	sm.SetState(gameState)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error(ctx, "game loop failed", logging.Err(err))
	}
}
