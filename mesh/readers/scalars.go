package readers

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/notargets/isosurf/mesh"
)

// ReadScalars reads n per-vertex values stored as raw little endian floats.
// The precision is taken from the file size: 4n bytes hold float32, 8n bytes
// float64, which is narrowed.
func ReadScalars(filename string, n int) ([]float32, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	scalars := make([]float32, n)
	switch len(raw) {
	case 4 * n:
		for i := range scalars {
			scalars[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
		}
	case 8 * n:
		for i := range scalars {
			scalars[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:])))
		}
	default:
		return nil, fmt.Errorf("%w: %s holds %d bytes, want %d or %d for %d vertices",
			mesh.ErrScalarLength, filename, len(raw), 4*n, 8*n, n)
	}
	return scalars, nil
}

// AttachScalars reads the scalar field of m from filename, replacing any
// field the mesh file carried
func AttachScalars(m *mesh.Mesh, filename string) (err error) {
	var scalars []float32
	if scalars, err = ReadScalars(filename, len(m.Vertices)); err != nil {
		return
	}
	m.Scalars = scalars
	return
}
