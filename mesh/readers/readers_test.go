package readers

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// Helper function to create temporary test files
func createTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(tmpFile, content, 0644))
	return tmpFile
}

func createTempMshFile(t *testing.T, content string) string {
	t.Helper()
	return createTempFile(t, "test.msh", []byte(content))
}

func zstdBytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write(raw)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.Bytes()
}

// A tet and a pyramid sharing face 2-3-4, with a boundary triangle and a
// line that is skipped
const twoElementMsh = `$MeshFormat
2.2 0 8
$EndMeshFormat
$PhysicalNames
1
3 1 "fluid"
$EndPhysicalNames
$Nodes
6
10 0 0 0
20 1 0 0
30 0 1 0
40 0 0 1
50 1 1 1
60 0.5 0.5 -1
$EndNodes
$Elements
4
1 1 2 0 1 10 20
2 4 2 1 1 10 20 30 40
3 7 2 1 1 20 30 40 50 60
4 2 2 0 1 20 30 40
$EndElements
$NodeData
1
"f"
1
0.0
3
0
1
6
10 0.5
20 1.5
30 2.5
40 3.5
50 4.5
60 5.5
$EndNodeData
$NodeData
1
"g"
1
0.0
3
0
1
6
10 9
20 9
30 9
40 9
50 9
60 9
$EndNodeData
`

func TestReadGmsh22(t *testing.T) {
	msh, err := ReadGmsh22(createTempMshFile(t, twoElementMsh))
	require.NoError(t, err)

	assert.Equal(t, "2.2", msh.FormatVersion)
	require.Len(t, msh.Vertices, 6)
	assert.Equal(t, mesh.Vec3{0.5, 0.5, -1}, msh.Vertices[5])
	idx, ok := msh.GetNodeIndex(40)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	assert.Equal(t, [][4]int{{0, 1, 2, 3}}, msh.Tets)
	assert.Equal(t, [][5]int{{1, 2, 3, 4, 5}}, msh.Pyramids)
	assert.Equal(t, [][3]int{{1, 2, 3}}, msh.Triangles)
	assert.Empty(t, msh.Hexes)

	// First view only
	assert.Equal(t, []float32{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}, msh.Scalars)
}

func TestReadGmsh22Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"binary", "$MeshFormat\n2.2 1 8\n$EndMeshFormat\n"},
		{"version", "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"},
		{"unknown node", `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
1
1 0 0 0
$EndNodes
$Elements
1
1 4 0 1 2 3 4
$EndElements
`},
		{"short element", `$Nodes
1
1 0 0 0
$EndNodes
$Elements
1
1 4 0 1
$EndElements
`},
		{"bad coordinate", "$Nodes\n1\n1 0 x 0\n$EndNodes\n"},
		{"partial node data", `$Nodes
2
1 0 0 0
2 1 0 0
$EndNodes
$NodeData
0
0
3
0
1
1
1 0.5
$EndNodeData
`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadGmsh22(createTempMshFile(t, tc.content))
			assert.Error(t, err)
		})
	}

	_, err := ReadGmsh22(filepath.Join(t.TempDir(), "missing.msh"))
	assert.Error(t, err)
}

func TestReadGmsh22SkipsVectorData(t *testing.T) {
	content := `$Nodes
2
1 0 0 0
2 1 0 0
$EndNodes
$NodeData
1
"velocity"
1
0.0
3
0
3
2
1 1 2 3
2 4 5 6
$EndNodeData
`
	msh, err := ReadGmsh22(createTempMshFile(t, content))
	require.NoError(t, err)
	assert.Nil(t, msh.Scalars)
	assert.Len(t, msh.Vertices, 2)
}

func TestReadSU2(t *testing.T) {
	content := `NDIME= 3
NPOIN= 8
0 0 0
1 0 0
1 1 0
0 1 0
0 0 1
1 0 1
1 1 1
0 1 1
NELEM= 3
12 0 1 2 3 4 5 6 7 0
10 0 1 3 4 1
13 0 1 3 4 5 7 2
NMARK= 1
MARKER_TAG= bottom
MARKER_ELEMS= 1
9 0 1 2 3
`
	msh, err := ReadSU2(createTempFile(t, "mixed.su2", []byte(content)))
	require.NoError(t, err)
	assert.Len(t, msh.Vertices, 8)
	assert.Equal(t, [][8]int{{0, 1, 2, 3, 4, 5, 6, 7}}, msh.Hexes)
	assert.Equal(t, [][4]int{{0, 1, 3, 4}}, msh.Tets)
	assert.Equal(t, [][6]int{{0, 1, 3, 4, 5, 7}}, msh.Wedges)
	assert.Empty(t, msh.Quads)
	assert.Nil(t, msh.Scalars)

	for name, bad := range map[string]string{
		"no NDIME":    "NPOIN= 1\n0 0 0\n",
		"no NPOIN":    "NDIME= 3\n",
		"bad NDIME":   "NDIME= 4\n",
		"bad type":    "NDIME= 3\nNPOIN= 1\n0 0 0\nNELEM= 1\n99 0\n",
		"index range": "NDIME= 3\nNPOIN= 1\n0 0 0\nNELEM= 1\n10 0 1 2 3\n",
	} {
		_, err := ReadSU2(createTempFile(t, "bad.su2", []byte(bad)))
		assert.Error(t, err, name)
	}
}

func TestReadMeshFile(t *testing.T) {
	msh, err := ReadMeshFile(createTempMshFile(t, twoElementMsh))
	require.NoError(t, err)
	assert.Equal(t, 2, msh.NumVolumeElements())

	// Compressed input is read through the inner extension
	zst := createTempFile(t, "test.msh.zst", zstdBytes(t, []byte(twoElementMsh)))
	zmsh, err := ReadMeshFile(zst)
	require.NoError(t, err)
	assert.Equal(t, msh, zmsh)

	_, err = ReadMeshFile(createTempFile(t, "test.neu", nil))
	assert.Error(t, err)
}

func float32Bytes(values []float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

func TestReadScalars(t *testing.T) {
	values := []float32{0, -1.5, 3.25, 1e-3}

	s, err := ReadScalars(createTempFile(t, "f.bin", float32Bytes(values)), 4)
	require.NoError(t, err)
	assert.Equal(t, values, s)

	b64 := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(b64[8*i:], math.Float64bits(float64(v)))
	}
	s, err = ReadScalars(createTempFile(t, "f64.bin", b64), 4)
	require.NoError(t, err)
	assert.Equal(t, values, s)

	s, err = ReadScalars(createTempFile(t, "f.bin.zst", zstdBytes(t, float32Bytes(values))), 4)
	require.NoError(t, err)
	assert.Equal(t, values, s)

	_, err = ReadScalars(createTempFile(t, "short.bin", float32Bytes(values[:3])), 4)
	assert.ErrorIs(t, err, mesh.ErrScalarLength)
}

func TestAttachScalars(t *testing.T) {
	msh := mesh.NewMesh()
	for i := 0; i < 4; i++ {
		msh.AddNode(i, mesh.Vec3{float32(i), 0, 0})
	}
	require.NoError(t, msh.AddElement(utils.Tet, []int{0, 1, 2, 3}))

	require.NoError(t, AttachScalars(msh, createTempFile(t, "f.bin", float32Bytes([]float32{1, 2, 3, 4}))))
	assert.Equal(t, []float32{1, 2, 3, 4}, msh.Scalars)

	err := AttachScalars(msh, createTempFile(t, "g.bin", float32Bytes([]float32{1, 2})))
	assert.ErrorIs(t, err, mesh.ErrScalarLength)
	assert.Equal(t, []float32{1, 2, 3, 4}, msh.Scalars)
}
