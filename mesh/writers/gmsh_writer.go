package writers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// elementTypeToGmsh22 converts our ElementType to the Gmsh 2.2 element type number
var elementTypeToGmsh22 = map[utils.ElementType]int{
	utils.Triangle: 2,
	utils.Quad:     3,
	utils.Tet:      4,
	utils.Hex:      5,
	utils.Prism:    6,
	utils.Pyramid:  7,
}

// gmshWriteOrder puts surface elements first, matching the usual Gmsh layout
var gmshWriteOrder = []utils.ElementType{utils.Triangle, utils.Quad,
	utils.Tet, utils.Hex, utils.Prism, utils.Pyramid}

// WriteGmsh22 writes m as an ASCII Gmsh 2.2 file. Node and element IDs are
// 1-based array positions and the scalar field, if any, is written as a
// $NodeData view named "scalar".
func WriteGmsh22(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	ff := func(f float32) string {
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}

	fmt.Fprintf(bw, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	fmt.Fprintf(bw, "$Nodes\n%d\n", len(m.Vertices))
	for i, v := range m.Vertices {
		fmt.Fprintf(bw, "%d %s %s %s\n", i+1, ff(v[0]), ff(v[1]), ff(v[2]))
	}
	fmt.Fprintf(bw, "$EndNodes\n")

	var numElements int
	for _, et := range gmshWriteOrder {
		numElements += m.NumElements(et)
	}
	fmt.Fprintf(bw, "$Elements\n%d\n", numElements)
	elemID := 1
	for _, et := range gmshWriteOrder {
		gmshType := elementTypeToGmsh22[et]
		for k := 0; k < m.NumElements(et); k++ {
			// Format: elem-id elem-type num-tags physical geometric node1 node2 ...
			fmt.Fprintf(bw, "%d %d 2 0 1", elemID, gmshType)
			for _, v := range m.ElementVertices(et, k) {
				fmt.Fprintf(bw, " %d", v+1)
			}
			fmt.Fprintln(bw)
			elemID++
		}
	}
	fmt.Fprintf(bw, "$EndElements\n")

	if m.Scalars != nil {
		fmt.Fprintf(bw, "$NodeData\n1\n\"scalar\"\n1\n0.0\n3\n0\n1\n%d\n", len(m.Scalars))
		for i, s := range m.Scalars {
			fmt.Fprintf(bw, "%d %s\n", i+1, ff(s))
		}
		fmt.Fprintf(bw, "$EndNodeData\n")
	}

	return bw.Flush()
}
