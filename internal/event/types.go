// internal/event/types.go
package event

const (
	EnemySpawned     EventType = "EnemySpawned"     // Data: types.EntityID
	EnemyKilled      EventType = "EnemyKilled"      // Data: types.EntityID, здоровье <= 0
	EnemyReachedGoal EventType = "EnemyReachedGoal" // Data: types.EntityID, дошёл до последней точки
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
)
