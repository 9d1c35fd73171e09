package mesh

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/isosurf/utils"
)

// Statistics summarizes the contents of a mesh
type Statistics struct {
	NumVertices  int
	ElementCount map[utils.ElementType]int
	BoundsMin    Vec3
	BoundsMax    Vec3
	HasScalars   bool
	ScalarMin    float32
	ScalarMax    float32
	SurfaceArea  float64
}

func (m *Mesh) Statistics() (st Statistics) {
	st.NumVertices = len(m.Vertices)
	st.ElementCount = make(map[utils.ElementType]int)
	for _, et := range []utils.ElementType{utils.Tet, utils.Pyramid, utils.Prism,
		utils.Hex, utils.Triangle, utils.Quad} {
		if n := m.NumElements(et); n != 0 {
			st.ElementCount[et] = n
		}
	}
	st.BoundsMin, st.BoundsMax = m.BoundingBox()
	st.ScalarMin, st.ScalarMax, st.HasScalars = m.ScalarRange()
	st.SurfaceArea = m.SurfaceArea()
	return
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics() {
	m.FprintStatistics(os.Stdout)
}

func (m *Mesh) FprintStatistics(w io.Writer) {
	st := m.Statistics()
	fmt.Fprintf(w, "Mesh Statistics:\n")
	if m.FormatVersion != "" {
		fmt.Fprintf(w, "  Format: %s\n", m.FormatVersion)
	}
	fmt.Fprintf(w, "  Vertices: %d\n", st.NumVertices)
	fmt.Fprintf(w, "  Element types:\n")
	for _, et := range []utils.ElementType{utils.Tet, utils.Pyramid, utils.Prism,
		utils.Hex, utils.Triangle, utils.Quad} {
		if count, ok := st.ElementCount[et]; ok {
			fmt.Fprintf(w, "    %s: %d\n", et, count)
		}
	}
	fmt.Fprintf(w, "  Bounds: [%g %g %g] - [%g %g %g]\n",
		st.BoundsMin[0], st.BoundsMin[1], st.BoundsMin[2],
		st.BoundsMax[0], st.BoundsMax[1], st.BoundsMax[2])
	if st.HasScalars {
		fmt.Fprintf(w, "  Scalar range: [%g, %g]\n", st.ScalarMin, st.ScalarMax)
	} else {
		fmt.Fprintf(w, "  Scalar range: none\n")
	}
	if len(m.Triangles) != 0 {
		fmt.Fprintf(w, "  Surface area: %g\n", st.SurfaceArea)
	}
}
