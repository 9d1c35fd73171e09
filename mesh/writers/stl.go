package writers

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/isosurf/mesh"
)

const stlTriangleSize = 50

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

// WriteSTL writes the triangles of m in binary STL format. Volume and quad
// elements are not written. A mesh without triangles gives a valid empty file.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	for i, v := range m.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("inf/NaN vertex %d: %v", i, v)
		}
	}
	bw := bufio.NewWriter(w)
	header := stlHeader{
		Count: uint32(len(m.Triangles)),
	}
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return err
	}
	var (
		d stlTriangle
		b [stlTriangleSize]byte
	)
	for k, tri := range m.Triangles {
		d.Normal = triangleNormal(m, k)
		d.Vertex1 = m.Vertices[tri[0]]
		d.Vertex2 = m.Vertices[tri[1]]
		d.Vertex3 = m.Vertices[tri[2]]
		d.put(b[:])
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// triangleNormal is the unit normal by the right hand rule, zero for
// triangles without area
func triangleNormal(m *mesh.Mesh, k int) (n [3]float32) {
	var (
		tri        = m.Triangles[k]
		v0, v1, v2 = m.Vertices[tri[0]].R3(), m.Vertices[tri[1]].R3(), m.Vertices[tri[2]].R3()
		c          = r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	)
	if r3.Norm(c) == 0 {
		return
	}
	u := r3.Unit(c)
	return [3]float32{float32(u.X), float32(u.Y), float32(u.Z)}
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}

	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}
