package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/isosurf/utils"
)

// Vec3 is a single precision vertex position
type Vec3 [3]float32

// R3 widens the position for double precision geometry
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

var (
	ErrScalarLength = errors.New("scalar field length does not match vertex count")
	ErrIndexRange   = errors.New("element references a vertex out of range")
)

// Mesh is an unstructured mesh of mixed volume and surface elements with an
// optional per-vertex scalar field
type Mesh struct {
	// Geometry
	Vertices []Vec3
	Scalars  []float32 // Per-vertex scalar field, nil when the mesh carries none

	// Volume elements, fixed arity
	Tets     [][4]int
	Pyramids [][5]int // Vertex 4 is the apex
	Wedges   [][6]int
	Hexes    [][8]int

	// Surface elements
	Triangles [][3]int
	Quads     [][4]int

	// File node ID -> array index, filled by readers
	NodeIDMap map[int]int

	FormatVersion string
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		NodeIDMap: make(map[int]int),
	}
}

// AddNode appends a vertex and records the file ID it was read with
func (m *Mesh) AddNode(nodeID int, pos Vec3) {
	if m.NodeIDMap == nil {
		m.NodeIDMap = make(map[int]int)
	}
	m.NodeIDMap[nodeID] = len(m.Vertices)
	m.Vertices = append(m.Vertices, pos)
}

// GetNodeIndex translates a file node ID to an index into Vertices
func (m *Mesh) GetNodeIndex(nodeID int) (idx int, ok bool) {
	idx, ok = m.NodeIDMap[nodeID]
	return
}

// AddElement appends an element given by vertex array indices
func (m *Mesh) AddElement(etype utils.ElementType, verts []int) error {
	if n := etype.GetNumNodes(); n == 0 || len(verts) != n {
		return fmt.Errorf("element type %v expects %d nodes, got %d",
			etype, etype.GetNumNodes(), len(verts))
	}
	switch etype {
	case utils.Tet:
		m.Tets = append(m.Tets, [4]int(verts))
	case utils.Pyramid:
		m.Pyramids = append(m.Pyramids, [5]int(verts))
	case utils.Prism:
		m.Wedges = append(m.Wedges, [6]int(verts))
	case utils.Hex:
		m.Hexes = append(m.Hexes, [8]int(verts))
	case utils.Triangle:
		m.Triangles = append(m.Triangles, [3]int(verts))
	case utils.Quad:
		m.Quads = append(m.Quads, [4]int(verts))
	default:
		return fmt.Errorf("unsupported element type: %v", etype)
	}
	return nil
}

// NumElements returns the number of elements of one type
func (m *Mesh) NumElements(etype utils.ElementType) int {
	switch etype {
	case utils.Tet:
		return len(m.Tets)
	case utils.Pyramid:
		return len(m.Pyramids)
	case utils.Prism:
		return len(m.Wedges)
	case utils.Hex:
		return len(m.Hexes)
	case utils.Triangle:
		return len(m.Triangles)
	case utils.Quad:
		return len(m.Quads)
	default:
		return 0
	}
}

func (m *Mesh) NumVolumeElements() (n int) {
	for _, et := range utils.VolumeElementTypes {
		n += m.NumElements(et)
	}
	return
}

// ElementVertices returns the vertex indices of element k of the given type
func (m *Mesh) ElementVertices(etype utils.ElementType, k int) []int {
	switch etype {
	case utils.Tet:
		return m.Tets[k][:]
	case utils.Pyramid:
		return m.Pyramids[k][:]
	case utils.Prism:
		return m.Wedges[k][:]
	case utils.Hex:
		return m.Hexes[k][:]
	case utils.Triangle:
		return m.Triangles[k][:]
	case utils.Quad:
		return m.Quads[k][:]
	default:
		return nil
	}
}

// Validate checks that the scalar field matches the vertices and that every
// element index lies within the vertex array
func (m *Mesh) Validate() error {
	if m.Scalars != nil && len(m.Scalars) != len(m.Vertices) {
		return fmt.Errorf("%w: %d scalars, %d vertices",
			ErrScalarLength, len(m.Scalars), len(m.Vertices))
	}
	nv := len(m.Vertices)
	for _, et := range []utils.ElementType{utils.Tet, utils.Pyramid, utils.Prism,
		utils.Hex, utils.Triangle, utils.Quad} {
		for k := 0; k < m.NumElements(et); k++ {
			for _, v := range m.ElementVertices(et, k) {
				if v < 0 || v >= nv {
					return fmt.Errorf("%w: %v %d vertex %d not in [0,%d)",
						ErrIndexRange, et, k, v, nv)
				}
			}
		}
	}
	return nil
}

// BoundingBox returns the component-wise extent of the vertices
func (m *Mesh) BoundingBox() (lo, hi Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math32.Min(lo[i], v[i])
			hi[i] = math32.Max(hi[i], v[i])
		}
	}
	return
}

// ScalarRange returns the extent of the scalar field, ok is false when there
// is no field or it is empty
func (m *Mesh) ScalarRange() (lo, hi float32, ok bool) {
	if len(m.Scalars) == 0 {
		return
	}
	lo, hi = m.Scalars[0], m.Scalars[0]
	for _, s := range m.Scalars[1:] {
		lo = math32.Min(lo, s)
		hi = math32.Max(hi, s)
	}
	return lo, hi, true
}

// TriangleArea is half the magnitude of the edge cross product
func (m *Mesh) TriangleArea(k int) float64 {
	var (
		tri        = m.Triangles[k]
		v0, v1, v2 = m.Vertices[tri[0]].R3(), m.Vertices[tri[1]].R3(), m.Vertices[tri[2]].R3()
	)
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0)))
}

// SurfaceArea sums the area of all triangles
func (m *Mesh) SurfaceArea() (area float64) {
	for k := range m.Triangles {
		area += m.TriangleArea(k)
	}
	return
}
