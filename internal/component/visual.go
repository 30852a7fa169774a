package component

// Scale — множитель размера спрайта, выводится из здоровья.
type Scale struct {
	Value float64
}
