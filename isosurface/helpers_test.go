package isosurface

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// newTestMesh builds a mesh from positions and scalars
func newTestMesh(pos []mesh.Vec3, scalars []float32) *mesh.Mesh {
	m := mesh.NewMesh()
	for i, p := range pos {
		m.AddNode(i, p)
	}
	m.Scalars = scalars
	return m
}

var unitCubeCorners = []mesh.Vec3{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// mixedGridMesh fills an n^3 lattice of unit cells with hexes, wedge pairs,
// pyramids and tets in rotation, the scalar field being the squared distance
// from the lattice center
func mixedGridMesh(t testing.TB, n int) *mesh.Mesh {
	t.Helper()
	var (
		m   = mesh.NewMesh()
		np1 = n + 1
		c   = float32(n) / 2
		id  = func(i, j, k int) int { return i + np1*(j+np1*k) }
	)
	for k := 0; k < np1; k++ {
		for j := 0; j < np1; j++ {
			for i := 0; i < np1; i++ {
				p := mesh.Vec3{float32(i), float32(j), float32(k)}
				m.AddNode(id(i, j, k), p)
				dx, dy, dz := p[0]-c, p[1]-c, p[2]-c
				m.Scalars = append(m.Scalars, dx*dx+dy*dy+dz*dz)
			}
		}
	}
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				v := []int{
					id(i, j, k), id(i+1, j, k), id(i+1, j+1, k), id(i, j+1, k),
					id(i, j, k+1), id(i+1, j, k+1), id(i+1, j+1, k+1), id(i, j+1, k+1),
				}
				switch (i + j + k) % 4 {
				case 0:
					require.NoError(t, m.AddElement(utils.Hex, v))
				case 1:
					require.NoError(t, m.AddElement(utils.Prism, []int{v[0], v[1], v[2], v[4], v[5], v[6]}))
					require.NoError(t, m.AddElement(utils.Prism, []int{v[0], v[2], v[3], v[4], v[6], v[7]}))
				case 2:
					require.NoError(t, m.AddElement(utils.Pyramid, []int{v[0], v[1], v[2], v[3], v[6]}))
					require.NoError(t, m.AddElement(utils.Tet, []int{v[0], v[4], v[5], v[6]}))
					require.NoError(t, m.AddElement(utils.Tet, []int{v[0], v[6], v[7], v[4]}))
				case 3:
					require.NoError(t, m.AddElement(utils.Tet, []int{v[0], v[1], v[3], v[4]}))
					require.NoError(t, m.AddElement(utils.Tet, []int{v[1], v[2], v[3], v[6]}))
					require.NoError(t, m.AddElement(utils.Tet, []int{v[1], v[3], v[4], v[6]}))
					require.NoError(t, m.AddElement(utils.Tet, []int{v[1], v[4], v[5], v[6]}))
					require.NoError(t, m.AddElement(utils.Tet, []int{v[3], v[4], v[6], v[7]}))
				}
			}
		}
	}
	require.NoError(t, m.Validate())
	return m
}

type triangle [3]mesh.Vec3

// triangleSet resolves the indexed triangles to positions, sorted so two runs
// can be compared regardless of output order
func triangleSet(m *mesh.Mesh) []triangle {
	tris := make([]triangle, len(m.Triangles))
	for i, tri := range m.Triangles {
		for c := 0; c < 3; c++ {
			tris[i][c] = m.Vertices[tri[c]]
		}
	}
	slices.SortFunc(tris, func(a, b triangle) int {
		for c := 0; c < 3; c++ {
			if r := comparePositions(a[c], b[c]); r != 0 {
				return r
			}
		}
		return 0
	})
	return tris
}
