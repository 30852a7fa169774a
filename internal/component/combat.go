package component

// Health — компонент здоровья. Может уйти в минус до удаления сущности.
type Health struct {
	Value float64
}

// Combat — параметры башни: радиус действия и урон в секунду.
type Combat struct {
	Range float64
	DPS   float64
}
