package component

// Enemy помечает сущность как врага.
type Enemy struct {
	SpawnedAt float64 // игровое время появления
}
