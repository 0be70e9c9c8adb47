// Package terrain models the region's tile terrain: kind codes, the grid,
// water and bridge analysis, grading and synthetic terrain.
package terrain

// Kind is a terrain code as stored in the region's terrainGrid.
type Kind int

const (
	Ocean Kind = iota
	Coast
	Land
	Mountain
	River
)

// IsWater reports whether k is open water (ocean or river).
func (k Kind) IsWater() bool {
	return k == Ocean || k == River
}

// IsBuildable reports whether buildings may stand on k. Unknown codes are
// treated as dry land.
func (k Kind) IsBuildable() bool {
	return k != Ocean && k != Coast && k != River
}

func (k Kind) String() string {
	switch k {
	case Ocean:
		return "ocean"
	case Coast:
		return "coast"
	case Land:
		return "land"
	case Mountain:
		return "mountain"
	case River:
		return "river"
	}
	return "unknown"
}
