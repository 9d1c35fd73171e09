package readers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// ReadGmsh22 reads a Gmsh MSH file format version 2.2, ASCII only. The first
// single component $NodeData view becomes the scalar field.
func ReadGmsh22(filename string) (*mesh.Mesh, error) {
	file, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	msh := mesh.NewMesh()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := readMeshFormat22(scanner, msh); err != nil {
				return nil, err
			}

		case "$Nodes":
			if err := readNodes22(scanner, msh); err != nil {
				return nil, err
			}

		case "$Elements":
			if err := readElements22(scanner, msh); err != nil {
				return nil, err
			}

		case "$NodeData":
			if msh.Scalars != nil {
				skipSection(scanner, line)
				continue
			}
			if err := readNodeData22(scanner, msh); err != nil {
				return nil, err
			}

		default:
			// $PhysicalNames, $Periodic, $ElementData, ...
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				skipSection(scanner, line)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}

	if err := msh.Validate(); err != nil {
		return nil, err
	}
	return msh, nil
}

func skipSection(scanner *bufio.Scanner, section string) {
	endMarker := "$End" + section[1:]
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == endMarker {
			break
		}
	}
}

// readMeshFormat22 reads the MeshFormat section
func readMeshFormat22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}

	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}

	msh.FormatVersion = parts[0]
	if !strings.HasPrefix(msh.FormatVersion, "2.") {
		return fmt.Errorf("unsupported Gmsh format version: %s", msh.FormatVersion)
	}
	if fileType, _ := strconv.Atoi(parts[1]); fileType != 0 {
		return fmt.Errorf("binary Gmsh files are not supported")
	}

	skipSection(scanner, "$MeshFormat")
	return nil
}

// readNodes22 reads nodes in v2.2 format
func readNodes22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}

	numNodes, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid node count: %v", err)
	}
	msh.Vertices = make([]mesh.Vec3, 0, numNodes)

	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading nodes")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return fmt.Errorf("invalid node line: %s", scanner.Text())
		}

		nodeID, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid node line: %s", scanner.Text())
		}
		var pos mesh.Vec3
		for j := 0; j < 3; j++ {
			x, err := strconv.ParseFloat(parts[1+j], 32)
			if err != nil {
				return fmt.Errorf("invalid coordinate: %v", err)
			}
			pos[j] = float32(x)
		}

		msh.AddNode(nodeID, pos)
	}

	skipSection(scanner, "$Nodes")
	return nil
}

// readElements22 reads elements in v2.2 format
func readElements22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}

	numElements, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid element count: %v", err)
	}

	for i := 0; i < numElements; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading elements")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return fmt.Errorf("invalid element line")
		}

		elemID, _ := strconv.Atoi(parts[0])
		elemType, _ := strconv.Atoi(parts[1])
		numTags, _ := strconv.Atoi(parts[2])

		// Points, lines and high order elements play no part
		etype, ok := gmshElementType22[elemType]
		if !ok {
			continue
		}

		expectedNodes := etype.GetNumNodes()
		nodeStart := 3 + numTags
		if len(parts) < nodeStart+expectedNodes {
			return fmt.Errorf("element %d: expected %d nodes, got %d",
				elemID, expectedNodes, len(parts)-nodeStart)
		}

		verts := make([]int, expectedNodes)
		for j := 0; j < expectedNodes; j++ {
			nodeID, err := strconv.Atoi(parts[nodeStart+j])
			if err != nil {
				return fmt.Errorf("element %d: invalid node: %v", elemID, err)
			}
			idx, ok := msh.GetNodeIndex(nodeID)
			if !ok {
				return fmt.Errorf("element %d: unknown node %d", elemID, nodeID)
			}
			verts[j] = idx
		}

		if err := msh.AddElement(etype, verts); err != nil {
			return err
		}
	}

	skipSection(scanner, "$Elements")
	return nil
}

// readNodeData22 reads one $NodeData view. Views with more than one
// component are skipped.
func readNodeData22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	var intTags []int
	// String, real and integer tags, each preceded by its count
	for section := 0; section < 3; section++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF in NodeData")
		}
		numTags, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return fmt.Errorf("invalid NodeData tag count: %s", scanner.Text())
		}
		for j := 0; j < numTags; j++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF in NodeData tags")
			}
			if section == 2 {
				tag, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))
				intTags = append(intTags, tag)
			}
		}
	}
	// Integer tags: time step, number of components, number of entries
	if len(intTags) < 3 {
		return fmt.Errorf("NodeData needs 3 integer tags, got %d", len(intTags))
	}
	numComponents, numEntries := intTags[1], intTags[2]
	if numComponents != 1 {
		skipSection(scanner, "$NodeData")
		return nil
	}

	scalars := make([]float32, len(msh.Vertices))
	seen := make([]bool, len(msh.Vertices))
	for i := 0; i < numEntries; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading NodeData")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			return fmt.Errorf("invalid NodeData line: %s", scanner.Text())
		}
		nodeID, _ := strconv.Atoi(parts[0])
		idx, ok := msh.GetNodeIndex(nodeID)
		if !ok {
			return fmt.Errorf("NodeData: unknown node %d", nodeID)
		}
		f, err := strconv.ParseFloat(parts[1], 32)
		if err != nil {
			return fmt.Errorf("invalid NodeData value: %v", err)
		}
		scalars[idx] = float32(f)
		seen[idx] = true
	}
	for idx, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: NodeData has no value for vertex %d",
				mesh.ErrScalarLength, idx)
		}
	}
	msh.Scalars = scalars

	skipSection(scanner, "$NodeData")
	return nil
}

// gmshElementType22 maps the linear Gmsh v2.2 element types to ours
var gmshElementType22 = map[int]utils.ElementType{
	2: utils.Triangle, // 3-node triangle
	3: utils.Quad,     // 4-node quadrangle
	4: utils.Tet,      // 4-node tetrahedron
	5: utils.Hex,      // 8-node hexahedron
	6: utils.Prism,    // 6-node prism
	7: utils.Pyramid,  // 5-node pyramid
}
