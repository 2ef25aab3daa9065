package parameter

// World generation
const (
	// WorldWidth and WorldHeight are the tile grid dimensions
	WorldWidth  = 200
	WorldHeight = 200

	// MinGridSize is the smallest legal grid dimension (spawn clearing is 3x3)
	MinGridSize = 3

	// TileSize is the world-space edge length of one tile
	TileSize = 24.0

	// CavernBraiding is the default loop probability for cavern generation
	CavernBraiding = 0.25
)

// Spatial index
const (
	// QuadExtentX and QuadExtentY size the quad-tree root region, centered on the origin
	QuadExtentX = 10240.0
	QuadExtentY = 7680.0

	// QuadMaxDepth bounds subdivision depth
	QuadMaxDepth = 6

	// QuadLeafCapacity is the entry count a leaf holds before splitting
	QuadLeafCapacity = 8
)

// Host view
const (
	// ViewTilesX and ViewTilesY bound the camera query region in tiles
	ViewTilesX = 80
	ViewTilesY = 40
)

// Lander
const (
	// LanderWidth and LanderHeight are the lander bounding box in world units
	LanderWidth  = 16.0
	LanderHeight = 16.0
)
