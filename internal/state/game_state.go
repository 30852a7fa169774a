// internal/state/game_state.go
package state

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"path-tower-defense/internal/app"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/logging"
	"path-tower-defense/internal/observability"
	"path-tower-defense/internal/ui"
	"path-tower-defense/internal/utils"
	"path-tower-defense/pkg/render"
)

// Options — зависимости игрового состояния. Logger, Metrics и Watcher
// необязательны.
type Options struct {
	Config  config.Config
	Logger  logging.Logger
	Metrics *observability.SimCollector
	Watcher *config.Watcher
}

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	opts        Options
	viewport    utils.Viewport
	renderer    *render.SceneRenderer
	counter     *ui.ResourceIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	showStats   bool
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, opts Options) *GameState {
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}
	viewport := utils.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight}
	renderer := render.NewSceneRenderer(viewport, render.SceneColors{
		Background:  config.BackgroundColor,
		Path:        config.PathColor,
		Spawner:     config.SpawnerColor,
		Tower:       config.TowerColor,
		TowerRange:  config.TowerRangeColor,
		Enemy:       config.EnemyColor,
		TargetLine:  config.TargetLineColor,
		StrokeWidth: config.StrokeWidth,
	})

	gs := &GameState{
		sm:          sm,
		opts:        opts,
		viewport:    viewport,
		renderer:    renderer,
		counter:     ui.NewResourceIndicator(config.ScreenWidth/2, config.CounterY, config.CounterColor),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColor),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
	}
	gs.startSession(opts.Config)
	return gs
}

func (g *GameState) startSession(cfg config.Config) {
	if g.game != nil {
		g.game.Close()
	}
	g.opts.Config = cfg
	g.game = app.NewGame(cfg, g.opts.Logger, g.opts.Metrics)
	g.renderer.RenderPathImage(g.game.Path())
	g.speedButton.SetState(g.game.SpeedStep())
}

// GetGame возвращает текущую сессию.
func (g *GameState) GetGame() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.handlePauseClick()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.renderer.DebugLines = !g.renderer.DebugLines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.startSession(g.opts.Config)
	}

	// Обработка левой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y)
		}
	}

	g.game.Update(deltaTime)
}

// pollConfig подхватывает перечитанный конфиг и перезапускает сессию.
func (g *GameState) pollConfig() {
	w := g.opts.Watcher
	if w == nil {
		return
	}
	select {
	case cfg, ok := <-w.Events:
		if !ok {
			return
		}
		g.opts.Logger.Info(context.Background(), "config reloaded, restarting session")
		g.startSession(cfg)
	case err, ok := <-w.Errors:
		if ok {
			g.opts.Logger.Warn(context.Background(), "config reload failed", logging.Err(err))
		}
	default:
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	mx, my := float32(x), float32(y)
	return g.speedButton.IsClicked(mx, my) || g.pauseButton.IsClicked(mx, my)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	mx, my := float32(x), float32(y)
	switch {
	case g.speedButton.IsClicked(mx, my):
		if g.speedButton.Ready() {
			g.speedButton.SetState(g.game.HandleSpeedClick())
		}
	case g.pauseButton.IsClicked(mx, my):
		if g.pauseButton.Ready() {
			g.handlePauseClick()
		}
	}
}

// handleGameClick ставит башню под курсором, если политика это разрешает.
func (g *GameState) handleGameClick(x, y int) {
	if !g.game.CanPlaceByClick() {
		return
	}
	wx, wy := g.viewport.ScreenToWorld(float64(x), float64(y))
	if _, err := g.game.PlaceTower(wx, wy); err != nil {
		g.opts.Logger.Warn(context.Background(), "tower placement rejected", logging.Err(err))
	}
}

func (g *GameState) handlePauseClick() {
	g.game.HandlePauseClick()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)
	g.counter.Draw(screen, g.game.Resources())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.showStats {
		s := g.game.Stats()
		g.counter.DrawLines(screen, 10, 20,
			fmt.Sprintf("time %.1fs  x%.0f", s.GameTime, g.game.SpeedMultiplier),
			fmt.Sprintf("enemies %d  towers %d", s.Enemies, s.Towers),
			fmt.Sprintf("spawned %d  killed %d  leaked %d", s.Spawned, s.Killed, s.ReachedGoal),
			fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		)
	}
}

func (g *GameState) Exit() {}

// Close завершает сессию при выходе из программы.
func (g *GameState) Close() {
	if g.game != nil {
		g.game.Close()
	}
}
