package isosurface

import "github.com/notargets/isosurf/mesh"

// FatVertex is a raw triangle corner as produced by the kernel. Idx is scratch
// space for the index builder: it holds the corner's position in the shared
// buffer while sorting.
type FatVertex struct {
	Pos mesh.Vec3
	Idx int
}

// cellCode sets bit i when corner i lies strictly above the iso-value
func cellCode(cell *Cell, iso float32) (code int) {
	for i := range cell {
		if cell[i].Value > iso {
			code |= 1 << i
		}
	}
	return
}

// edgeParameter is the fraction along s0->s1 where the field reaches iso
func edgeParameter(s0, s1, iso float32) float64 {
	if s1 == s0 {
		return 0
	}
	return (float64(iso) - float64(s0)) / (float64(s1) - float64(s0))
}

func interpolate(c0, c1 *Corner, iso float32) (p mesh.Vec3) {
	t := edgeParameter(c0.Value, c1.Value, iso)
	for i := 0; i < 3; i++ {
		p[i] = float32((1-t)*float64(c0.Pos[i]) + t*float64(c1.Pos[i]))
	}
	return
}

// polygonizeCell appends three corners to dst for every non-degenerate
// triangle of the cell's surface crossing
func polygonizeCell(dst []FatVertex, cell *Cell, iso float32) []FatVertex {
	code := cellCode(cell, iso)
	if code == 0 || code == 0xff {
		return dst
	}
	edges := &triangleCases[code]
	for e := 0; e < len(edges) && edges[e] > -1; e += 3 {
		var tri [3]mesh.Vec3
		for ii := 0; ii < 3; ii++ {
			ends := cellEdges[edges[e+ii]]
			tri[ii] = interpolate(&cell[ends[0]], &cell[ends[1]], iso)
		}
		if tri[1] == tri[0] || tri[2] == tri[0] || tri[1] == tri[2] {
			continue
		}
		for ii := 0; ii < 3; ii++ {
			dst = append(dst, FatVertex{Pos: tri[ii]})
		}
	}
	return dst
}
