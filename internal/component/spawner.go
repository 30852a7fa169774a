package component

// Spawner — точка появления врагов с повторяющимся таймером.
type Spawner struct {
	Interval float64 // период, секунды
	Elapsed  float64 // накопленное время с последнего срабатывания
	CatchUp  bool    // создавать по врагу на каждый пропущенный период
}
