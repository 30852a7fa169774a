// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"path-tower-defense/internal/config"
	"path-tower-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var pauseOverlayColor = color.RGBA{0, 0, 0, 120}

// PauseState замораживает симуляцию: Update игры не вызывается, кадр
// предыдущего состояния рисуется под затемнением.
type PauseState struct {
	stateMachine *StateMachine
	gameState    *GameState
	label        *ui.ResourceIndicator
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{
		stateMachine: sm,
		gameState:    gs,
		label:        ui.NewResourceIndicator(config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if !unpause && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = s.gameState.pauseButton.IsClicked(float32(x), float32(y)) && s.gameState.pauseButton.Ready()
	}

	if unpause {
		s.gameState.GetGame().HandlePauseClick()
		s.stateMachine.SetState(s.gameState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseOverlayColor, false)
	s.label.DrawLines(screen, config.ScreenWidth/2-20, config.ScreenHeight/2, "PAUSED")
}

func (s *PauseState) Exit() {}
