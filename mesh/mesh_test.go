package mesh

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/isosurf/utils"
)

// unitCube returns the 8 corners of the unit cube in hex ordering
func unitCube() *Mesh {
	m := NewMesh()
	for i, p := range []Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	} {
		m.AddNode(i+1, p)
	}
	return m
}

func TestAddElement(t *testing.T) {
	m := unitCube()
	require.NoError(t, m.AddElement(utils.Hex, []int{0, 1, 2, 3, 4, 5, 6, 7}))
	require.NoError(t, m.AddElement(utils.Tet, []int{0, 1, 3, 4}))
	require.NoError(t, m.AddElement(utils.Pyramid, []int{0, 1, 2, 3, 6}))
	require.NoError(t, m.AddElement(utils.Prism, []int{0, 1, 3, 4, 5, 7}))
	require.NoError(t, m.AddElement(utils.Triangle, []int{0, 1, 2}))
	require.NoError(t, m.AddElement(utils.Quad, []int{0, 1, 2, 3}))

	assert.Equal(t, 1, m.NumElements(utils.Hex))
	assert.Equal(t, 1, m.NumElements(utils.Tet))
	assert.Equal(t, 1, m.NumElements(utils.Pyramid))
	assert.Equal(t, 1, m.NumElements(utils.Prism))
	assert.Equal(t, 4, m.NumVolumeElements())
	assert.Equal(t, []int{0, 1, 2, 3, 6}, m.ElementVertices(utils.Pyramid, 0))

	err := m.AddElement(utils.Tet, []int{0, 1, 2})
	assert.ErrorContains(t, err, "expects 4 nodes")
	err = m.AddElement(utils.Line, []int{0, 1})
	assert.ErrorContains(t, err, "unsupported element type")
}

func TestNodeIDMap(t *testing.T) {
	m := NewMesh()
	m.AddNode(10, Vec3{1, 2, 3})
	m.AddNode(3, Vec3{4, 5, 6})
	idx, ok := m.GetNodeIndex(3)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = m.GetNodeIndex(7)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	m := unitCube()
	require.NoError(t, m.AddElement(utils.Tet, []int{0, 1, 3, 4}))
	assert.NoError(t, m.Validate())

	m.Scalars = []float32{1, 2}
	assert.True(t, errors.Is(m.Validate(), ErrScalarLength))
	m.Scalars = make([]float32, 8)
	assert.NoError(t, m.Validate())

	require.NoError(t, m.AddElement(utils.Hex, []int{0, 1, 2, 3, 4, 5, 6, 8}))
	assert.True(t, errors.Is(m.Validate(), ErrIndexRange))
}

func TestBoundsAndRanges(t *testing.T) {
	m := unitCube()
	lo, hi := m.BoundingBox()
	assert.Equal(t, Vec3{0, 0, 0}, lo)
	assert.Equal(t, Vec3{1, 1, 1}, hi)

	_, _, ok := m.ScalarRange()
	assert.False(t, ok)
	m.Scalars = []float32{3, -1, 2, 0, 0, 0, 7, 1}
	slo, shi, ok := m.ScalarRange()
	assert.True(t, ok)
	assert.Equal(t, float32(-1), slo)
	assert.Equal(t, float32(7), shi)

	lo, hi = NewMesh().BoundingBox()
	assert.Equal(t, Vec3{}, lo)
	assert.Equal(t, Vec3{}, hi)
}

func TestSurfaceArea(t *testing.T) {
	m := unitCube()
	// Two triangles covering the bottom face, one covering half the diagonal plane
	m.Triangles = [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 2, 6}}
	assert.InDelta(t, 0.5, m.TriangleArea(0), 1e-12)
	assert.InDelta(t, 1+0.5*math.Sqrt2, m.SurfaceArea(), 1e-12)
}

func TestVec3(t *testing.T) {
	assert.True(t, Vec3{1, 2, 3}.IsFinite())
	assert.False(t, Vec3{1, float32(math.NaN()), 3}.IsFinite())
	assert.False(t, Vec3{float32(math.Inf(-1)), 0, 0}.IsFinite())
	v := Vec3{1, 2, 3}.R3()
	assert.Equal(t, 2.0, v.Y)
}

func TestPrintStatistics(t *testing.T) {
	m := unitCube()
	require.NoError(t, m.AddElement(utils.Hex, []int{0, 1, 2, 3, 4, 5, 6, 7}))
	m.Scalars = []float32{0, 1, 2, 3, 4, 5, 6, 7}
	st := m.Statistics()
	assert.Equal(t, 8, st.NumVertices)
	assert.Equal(t, map[utils.ElementType]int{utils.Hex: 1}, st.ElementCount)
	assert.True(t, st.HasScalars)

	var buf bytes.Buffer
	m.FprintStatistics(&buf)
	out := buf.String()
	assert.Contains(t, out, "Vertices: 8")
	assert.Contains(t, out, "Hex: 1")
	assert.Contains(t, out, "Scalar range: [0, 7]")
}
