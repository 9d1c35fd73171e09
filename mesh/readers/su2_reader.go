package readers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// ReadSU2 reads an SU2 native format file. Boundary markers are skipped.
func ReadSU2(filename string) (*mesh.Mesh, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	msh := mesh.NewMesh()
	msh.FormatVersion = "su2"
	scanner := bufio.NewScanner(file)

	var ndime int
	var hasNDIME, hasNPOIN bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments (text after %)
		if idx := strings.Index(line, "%"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "NDIME=") {
			hasNDIME = true
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			if ndime != 2 && ndime != 3 {
				return nil, fmt.Errorf("unsupported dimension: NDIME=%d", ndime)
			}

		} else if strings.HasPrefix(line, "NPOIN=") {
			if !hasNDIME {
				return nil, fmt.Errorf("NPOIN= before NDIME=")
			}
			hasNPOIN = true
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)
			msh.Vertices = make([]mesh.Vec3, 0, npoin)

			for i := 0; i < npoin; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading nodes")
				}

				fields := strings.Fields(scanner.Text())
				if len(fields) < ndime {
					return nil, fmt.Errorf("invalid node line: expected at least %d coordinates", ndime)
				}

				var pos mesh.Vec3 // Always 3D, z = 0 for 2D meshes
				for j := 0; j < ndime; j++ {
					x, err := strconv.ParseFloat(fields[j], 32)
					if err != nil {
						return nil, fmt.Errorf("invalid coordinate: %v", err)
					}
					pos[j] = float32(x)
				}

				// Node ID is implicit (0-based) based on order
				msh.AddNode(i, pos)
			}

		} else if strings.HasPrefix(line, "NELEM=") {
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)

			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading elements")
				}

				fields := strings.Fields(scanner.Text())
				if len(fields) < 2 {
					return nil, fmt.Errorf("invalid element line")
				}

				su2Type, err := strconv.Atoi(fields[0])
				if err != nil {
					return nil, fmt.Errorf("invalid element type: %v", err)
				}
				if su2Type == vtkLine {
					continue
				}

				etype, ok := su2ElementTypeMap[su2Type]
				if !ok {
					return nil, fmt.Errorf("unknown element type: %d", su2Type)
				}

				numNodes := etype.GetNumNodes()
				if len(fields) < numNodes+1 {
					return nil, fmt.Errorf("element type %v expects %d nodes, got %d fields",
						etype, numNodes, len(fields)-1)
				}

				// Trailing element ID, if any, is ignored
				nodes := make([]int, numNodes)
				for j := 0; j < numNodes; j++ {
					nodes[j], err = strconv.Atoi(fields[1+j])
					if err != nil {
						return nil, fmt.Errorf("invalid node index: %v", err)
					}
					if nodes[j] < 0 || nodes[j] >= len(msh.Vertices) {
						return nil, fmt.Errorf("node index %d out of range [0,%d)",
							nodes[j], len(msh.Vertices))
					}
				}

				if err := msh.AddElement(etype, nodes); err != nil {
					return nil, err
				}
			}

		} else if strings.HasPrefix(line, "NMARK=") {
			var nmark int
			fmt.Sscanf(line, "NMARK=%d", &nmark)

			for i := 0; i < nmark; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading marker %d", i)
				}
				markerLine := strings.TrimSpace(scanner.Text())
				if !strings.HasPrefix(markerLine, "MARKER_TAG=") {
					return nil, fmt.Errorf("expected MARKER_TAG=, got: %s", markerLine)
				}

				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading marker elements for %s", markerLine)
				}
				elemLine := strings.TrimSpace(scanner.Text())
				var nMarkerElems int
				if _, err := fmt.Sscanf(elemLine, "MARKER_ELEMS=%d", &nMarkerElems); err != nil {
					return nil, fmt.Errorf("invalid MARKER_ELEMS line: %s", elemLine)
				}
				for j := 0; j < nMarkerElems; j++ {
					if !scanner.Scan() {
						return nil, fmt.Errorf("unexpected EOF reading boundary elements")
					}
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}

	if !hasNDIME {
		return nil, fmt.Errorf("missing required NDIME= section")
	}
	if !hasNPOIN {
		return nil, fmt.Errorf("missing required NPOIN= section")
	}

	if err := msh.Validate(); err != nil {
		return nil, err
	}
	return msh, nil
}

const vtkLine = 3

// su2ElementTypeMap maps SU2/VTK element type identifiers to our ElementType
var su2ElementTypeMap = map[int]utils.ElementType{
	5:  utils.Triangle, // VTK_TRIANGLE
	9:  utils.Quad,     // VTK_QUAD
	10: utils.Tet,      // VTK_TETRA
	12: utils.Hex,      // VTK_HEXAHEDRON
	13: utils.Prism,    // VTK_WEDGE
	14: utils.Pyramid,  // VTK_PYRAMID
}
