// component/tower.go
package component

// TowerOrigin records how a tower came to exist.
type TowerOrigin int

const (
	TowerSeeded TowerOrigin = iota // auto-placed along the path at startup
	TowerPlaced                    // placed by the input layer
)

// Tower помечает неподвижную башню. После создания не меняется.
type Tower struct {
	Origin TowerOrigin
}
