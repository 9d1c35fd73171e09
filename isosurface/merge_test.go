package isosurface

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/isosurf/mesh"
)

func TestOrderedBits(t *testing.T) {
	var (
		inf     = float32(math.Inf(1))
		negZero = float32(math.Copysign(0, -1))
		tiny    = math.Float32frombits(1)
		posNaN  = float32(math.NaN())
		negNaN  = math.Float32frombits(0xffc00000)
	)
	ascending := []float32{-inf, -math.MaxFloat32, -1, -tiny, 0, tiny, 1, math.MaxFloat32, inf}
	for i := 1; i < len(ascending); i++ {
		assert.Less(t, orderedBits(ascending[i-1]), orderedBits(ascending[i]), "%g < %g",
			ascending[i-1], ascending[i])
	}
	assert.Equal(t, orderedBits(0), orderedBits(negZero))
	assert.Greater(t, orderedBits(posNaN), orderedBits(inf))
	assert.Less(t, orderedBits(negNaN), orderedBits(-inf))
	assert.Equal(t, orderedBits(posNaN), orderedBits(posNaN))
}

func TestComparePositions(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	assert.Equal(t, 0, comparePositions(mesh.Vec3{1, 2, 3}, mesh.Vec3{1, 2, 3}))
	assert.Equal(t, -1, comparePositions(mesh.Vec3{1, 2, 3}, mesh.Vec3{1, 2, 4}))
	assert.Equal(t, 1, comparePositions(mesh.Vec3{2, 0, 0}, mesh.Vec3{1, 9, 9}))
	assert.True(t, samePosition(mesh.Vec3{negZero, 1, 0}, mesh.Vec3{0, 1, negZero}))

	c := canonical(mesh.Vec3{negZero, 1, negZero})
	assert.False(t, math.Signbit(float64(c[0])))
	assert.False(t, math.Signbit(float64(c[2])))
	assert.Equal(t, float32(1), c[1])
}

func TestMergeRuns(t *testing.T) {
	mk := func(xs ...float32) (fvs []FatVertex) {
		for i, x := range xs {
			fvs = append(fvs, FatVertex{Pos: mesh.Vec3{x, 0, 0}, Idx: int(x*10) + i})
		}
		return
	}
	a, b := mk(0, 2, 4, 6), mk(1, 2, 3)
	dst := make([]FatVertex, len(a)+len(b))
	mergeRuns(dst, a, b)
	assert.True(t, slices.IsSortedFunc(dst, compareFatVertex))
	dst = make([]FatVertex, len(a))
	mergeRuns(dst, a, nil)
	assert.Equal(t, a, dst)
}

func randomCorners(n int, seed int64) []FatVertex {
	var (
		rng     = rand.New(rand.NewSource(seed))
		corners = make([]FatVertex, n)
	)
	// Few distinct coordinates so that duplicates are common
	coord := func() float32 { return float32(rng.Intn(16)) / 4 }
	for i := range corners {
		corners[i] = FatVertex{Pos: mesh.Vec3{coord(), coord(), coord()}, Idx: i}
	}
	return corners
}

func TestSortCorners(t *testing.T) {
	for _, n := range []int{0, 1, 17, 1000, 3*minParallelSort + 5} {
		var (
			serial = randomCorners(n, int64(n))
			par    = slices.Clone(serial)
		)
		sortCorners(serial, 1)
		assert.True(t, slices.IsSortedFunc(serial, compareFatVertex), "n = %d", n)
		for _, NP := range []int{2, 3, 7} {
			copy(par, randomCorners(n, int64(n)))
			sortCorners(par, NP)
			require.Equal(t, serial, par, "n = %d, NP = %d", n, NP)
		}
	}
}

func TestBuildIndexedMesh(t *testing.T) {
	{ // Two triangles sharing an edge
		corners := []FatVertex{
			{Pos: mesh.Vec3{0, 0, 0}}, {Pos: mesh.Vec3{1, 0, 0}}, {Pos: mesh.Vec3{0, 1, 0}},
			{Pos: mesh.Vec3{1, 0, 0}}, {Pos: mesh.Vec3{1, 1, 0}}, {Pos: mesh.Vec3{0, 1, 0}},
		}
		out := buildIndexedMesh(corners, 1)
		assert.Equal(t, []mesh.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}}, out.Vertices)
		assert.Equal(t, [][3]int{{0, 2, 1}, {2, 3, 1}}, out.Triangles)
		assert.Nil(t, out.Scalars)
		assert.Empty(t, out.Tets)
	}
	{ // Signed zeros merge onto one +0 vertex
		negZero := float32(math.Copysign(0, -1))
		corners := []FatVertex{
			{Pos: mesh.Vec3{negZero, 0, 0}}, {Pos: mesh.Vec3{1, 0, 0}}, {Pos: mesh.Vec3{0, 1, 0}},
			{Pos: mesh.Vec3{0, 0, 0}}, {Pos: mesh.Vec3{0, 1, 0}}, {Pos: mesh.Vec3{0, 0, 1}},
		}
		out := buildIndexedMesh(corners, 1)
		require.Len(t, out.Vertices, 4)
		assert.Equal(t, out.Triangles[0][0], out.Triangles[1][0])
		for _, v := range out.Vertices {
			for _, x := range v {
				assert.False(t, math.Signbit(float64(x)))
			}
		}
	}
	{ // Nothing in, nothing out
		out := buildIndexedMesh(nil, 4)
		assert.Empty(t, out.Vertices)
		assert.Empty(t, out.Triangles)
	}
	{ // Every corner resolves to its own position, the vertices are unique and ordered
		corners := randomCorners(3*minParallelSort, 7)
		raw := slices.Clone(corners)
		out := buildIndexedMesh(corners, 5)
		require.Len(t, out.Triangles, len(raw)/3)
		for k, tri := range out.Triangles {
			for c := 0; c < 3; c++ {
				assert.Equal(t, raw[3*k+c].Pos, out.Vertices[tri[c]])
			}
		}
		for i := 1; i < len(out.Vertices); i++ {
			assert.Equal(t, -1, comparePositions(out.Vertices[i-1], out.Vertices[i]))
		}
	}
}
