// internal/types/types.go
package types

// EntityID — идентификатор сущности. Выдаётся по возрастанию и никогда не
// переиспользуется, поэтому устаревший ID просто не находит сущность.
type EntityID uint64

// NoEntity is the zero ID; entity.ECS never hands it out.
const NoEntity EntityID = 0
