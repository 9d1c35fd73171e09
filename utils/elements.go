package utils

// ElementType represents the element shapes understood by the mesh container

type ElementType int

const (
	Unknown ElementType = iota
	// 1D elements
	Line
	// 2D elements
	Triangle
	Quad
	// 3D elements
	Tet
	Hex
	Prism
	Pyramid
)

// String representation of element types
func (e ElementType) String() string {
	names := []string{
		"Unknown",
		"Line",
		"Triangle", "Quad",
		"Tet", "Hex", "Prism", "Pyramid",
	}
	if e >= 0 && int(e) < len(names) {
		return names[e]
	}
	return "Invalid"
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	case Tet, Hex, Prism, Pyramid:
		return 3
	default:
		return -1
	}
}

// GetNumNodes returns the number of corner nodes for each element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Line:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	case Tet:
		return 4
	case Hex:
		return 8
	case Prism:
		return 6
	case Pyramid:
		return 5
	default:
		return 0
	}
}

// VolumeElementTypes lists the 3D shapes in the order extraction visits them
var VolumeElementTypes = []ElementType{Tet, Pyramid, Prism, Hex}
