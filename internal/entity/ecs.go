// internal/entity/ecs.go
package entity

import (
	"slices"

	"path-tower-defense/internal/component"
	"path-tower-defense/internal/types"
)

// ECS — всё состояние симуляции. Никаких глобальных переменных: системы
// получают указатель на ECS и трогают только свои компоненты.
//
// ID выдаются по возрастанию и не переиспользуются, поэтому списки enemyIDs и
// towerIDs всегда отсортированы: итерация по ним детерминирована, в отличие
// от обхода map.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Rotations   map[types.EntityID]*component.Rotation
	PathMovers  map[types.EntityID]*component.PathMover
	Healths     map[types.EntityID]*component.Health
	Scales      map[types.EntityID]*component.Scale
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Spawners    map[types.EntityID]*component.Spawner

	enemyIDs []types.EntityID
	towerIDs []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Rotations:   make(map[types.EntityID]*component.Rotation),
		PathMovers:  make(map[types.EntityID]*component.PathMover),
		Healths:     make(map[types.EntityID]*component.Health),
		Scales:      make(map[types.EntityID]*component.Scale),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Spawners:    make(map[types.EntityID]*component.Spawner),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers id in the enemy order and attaches the marker component.
func (ecs *ECS) AddEnemy(id types.EntityID, enemy *component.Enemy) {
	if _, exists := ecs.Enemies[id]; !exists {
		ecs.enemyIDs = append(ecs.enemyIDs, id)
	}
	ecs.Enemies[id] = enemy
}

// AddTower registers id in the tower order and attaches the marker component.
func (ecs *ECS) AddTower(id types.EntityID, tower *component.Tower) {
	if _, exists := ecs.Towers[id]; !exists {
		ecs.towerIDs = append(ecs.towerIDs, id)
	}
	ecs.Towers[id] = tower
}

// EnemyIDs returns live enemies in spawn order. The slice is shared; callers
// must not modify it or hold it across DestroyEntity.
func (ecs *ECS) EnemyIDs() []types.EntityID { return ecs.enemyIDs }

// TowerIDs returns towers in placement order, with the same sharing rules as EnemyIDs.
func (ecs *ECS) TowerIDs() []types.EntityID { return ecs.towerIDs }

// IsAlive reports whether id still has any component.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	_, hasPos := ecs.Positions[id]
	_, isEnemy := ecs.Enemies[id]
	_, isTower := ecs.Towers[id]
	_, isSpawner := ecs.Spawners[id]
	return hasPos || isEnemy || isTower || isSpawner
}

// DestroyEntity strips every component from id. Destroying an unknown or
// already destroyed entity is a no-op and returns false.
func (ecs *ECS) DestroyEntity(id types.EntityID) bool {
	if !ecs.IsAlive(id) {
		return false
	}
	if _, isEnemy := ecs.Enemies[id]; isEnemy {
		ecs.enemyIDs = removeID(ecs.enemyIDs, id)
	}
	if _, isTower := ecs.Towers[id]; isTower {
		ecs.towerIDs = removeID(ecs.towerIDs, id)
	}
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Rotations, id)
	delete(ecs.PathMovers, id)
	delete(ecs.Healths, id)
	delete(ecs.Scales, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Spawners, id)
	return true
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	i, found := slices.BinarySearch(ids, id)
	if !found {
		return ids
	}
	return slices.Delete(ids, i, i+1)
}
