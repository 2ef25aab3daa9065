package component

// GravityComponent tags an entity as affected by gravity
type GravityComponent struct{}

// PlayerComponent tags an entity watched by the boundary policy
type PlayerComponent struct{}

// GameElementComponent tags an entity despawned when the playing phase exits
type GameElementComponent struct{}
