package interfaces

import (
	"path-tower-defense/internal/app"
	"path-tower-defense/internal/types"
	"path-tower-defense/pkg/waypath"
)

// Scene — то, что фронтенды читают каждый кадр.
type Scene interface {
	Path() waypath.Path
	Towers() []app.TowerSnapshot
	Enemies() []app.EnemySnapshot
	Targets() []app.Target
	Resources() int
	Stats() app.Stats
}

// Game — сцена плюс управление, доступное игроку.
type Game interface {
	Scene
	PlaceTower(x, y float64) (types.EntityID, error)
	CanPlaceByClick() bool
	HandleSpeedClick() int
	SpeedStep() int
	HandlePauseClick()
	IsPaused() bool
	Update(deltaTime float64)
}

var _ Game = (*app.Game)(nil)
