package isosurface

import (
	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// Corner is one cell corner: its position and the scalar value there
type Corner struct {
	Pos   mesh.Vec3
	Value float32
}

// Cell is an element normalized onto the 8 corners of a hexahedron, in the
// corner numbering of the case table
type Cell [8]Corner

// cornerSources gives, per element type, which element vertex fills each of
// the 8 cell corners. Shapes with fewer than 8 vertices repeat their trailing
// vertices; the edges collapsed this way interpolate to coincident points and
// the triangles they produce are dropped by the kernel.
var cornerSources = map[utils.ElementType][8]int{
	utils.Tet:     {0, 1, 2, 2, 3, 3, 3, 3},
	utils.Pyramid: {0, 1, 2, 3, 4, 4, 4, 4},
	utils.Prism:   {0, 1, 4, 3, 2, 2, 5, 5},
	utils.Hex:     {0, 1, 2, 3, 4, 5, 6, 7},
}

func cornerSource(etype utils.ElementType) (src [8]int, ok bool) {
	src, ok = cornerSources[etype]
	return
}

// liftCell fills cell with the corners of one element
func liftCell(m *mesh.Mesh, verts []int, src *[8]int, cell *Cell) {
	for i, s := range src {
		v := verts[s]
		cell[i] = Corner{Pos: m.Vertices[v], Value: m.Scalars[v]}
	}
}
