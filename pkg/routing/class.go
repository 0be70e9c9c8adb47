// Package routing synthesizes the road network: a highway spine between the
// major towns, an arterial backbone over all towns and per-town local street
// grids, recorded as one-tile-wide centerlines.
package routing

// Class is a road class. Larger values take precedence where classes meet.
type Class uint8

const (
	None Class = iota
	Local
	Arterial
	Highway
)

// Classes lists the road classes from lowest to highest priority.
var Classes = []Class{Local, Arterial, Highway}

func (c Class) String() string {
	switch c {
	case Local:
		return "local"
	case Arterial:
		return "arterial"
	case Highway:
		return "highway"
	}
	return "none"
}

// IsMajor reports whether c is a highway or arterial.
func (c Class) IsMajor() bool {
	return c == Highway || c == Arterial
}
