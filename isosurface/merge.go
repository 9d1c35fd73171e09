package isosurface

import (
	"cmp"
	"math"
	"slices"
	"sync"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// Below this many corners a single sort is faster than fanning out
const minParallelSort = 1 << 14

// orderedBits maps a float to a key whose unsigned order is the float order.
// -0 is folded onto +0. NaNs sort past the infinities of their sign and equal
// each other only with identical payloads.
func orderedBits(f float32) uint32 {
	if f == 0 {
		f = 0
	}
	b := math.Float32bits(f)
	if b&0x80000000 != 0 {
		return ^b
	}
	return b | 0x80000000
}

func comparePositions(a, b mesh.Vec3) int {
	for i := 0; i < 3; i++ {
		if c := cmp.Compare(orderedBits(a[i]), orderedBits(b[i])); c != 0 {
			return c
		}
	}
	return 0
}

func samePosition(a, b mesh.Vec3) bool {
	return comparePositions(a, b) == 0
}

func canonical(p mesh.Vec3) mesh.Vec3 {
	for i := range p {
		if p[i] == 0 {
			p[i] = 0
		}
	}
	return p
}

// compareFatVertex orders by position, then by buffer slot so that duplicates
// keep a fixed order within a run
func compareFatVertex(a, b FatVertex) int {
	if c := comparePositions(a.Pos, b.Pos); c != 0 {
		return c
	}
	return cmp.Compare(a.Idx, b.Idx)
}

// sortCorners sorts NP runs concurrently and merges them pairwise. The
// comparator is a total order, so the result does not depend on NP.
func sortCorners(corners []FatVertex, NP int) {
	if NP < 2 || len(corners) < minParallelSort {
		slices.SortFunc(corners, compareFatVertex)
		return
	}
	pm := utils.NewPartitionMap(NP, len(corners))
	utils.ParallelFor(pm, NP, func(bn, kMin, kMax int) {
		slices.SortFunc(corners[kMin:kMax], compareFatVertex)
	})
	var (
		runs     = slices.Clone(pm.Partitions)
		src, dst = corners, make([]FatVertex, len(corners))
		wg       = sync.WaitGroup{}
	)
	for len(runs) > 1 {
		next := make([][2]int, 0, (len(runs)+1)/2)
		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				r := runs[i]
				copy(dst[r[0]:r[1]], src[r[0]:r[1]])
				next = append(next, r)
				continue
			}
			a, b := runs[i], runs[i+1]
			wg.Add(1)
			go func(a, b [2]int) {
				mergeRuns(dst[a[0]:b[1]], src[a[0]:a[1]], src[b[0]:b[1]])
				wg.Done()
			}(a, b)
			next = append(next, [2]int{a[0], b[1]})
		}
		wg.Wait()
		src, dst = dst, src
		runs = next
	}
	if &src[0] != &corners[0] {
		copy(corners, src)
	}
}

// mergeRuns merges sorted a and b into dst, len(dst) == len(a)+len(b)
func mergeRuns(dst, a, b []FatVertex) {
	var i, j, k int
	for i < len(a) && j < len(b) {
		if compareFatVertex(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// buildIndexedMesh collapses the raw corners into unique vertices and
// rewrites every triangle corner as an index into them. The corners slice is
// reordered in place.
func buildIndexedMesh(corners []FatVertex, NP int) (out *mesh.Mesh) {
	for i := range corners {
		corners[i].Idx = i
	}
	sortCorners(corners, NP)

	var numUnique int
	for i := range corners {
		if i == 0 || !samePosition(corners[i].Pos, corners[i-1].Pos) {
			numUnique++
		}
	}
	out = &mesh.Mesh{
		Vertices:  make([]mesh.Vec3, 0, numUnique),
		Triangles: make([][3]int, len(corners)/3),
	}
	uniqueID := -1
	for i, fv := range corners {
		if i == 0 || !samePosition(fv.Pos, corners[i-1].Pos) {
			uniqueID++
			out.Vertices = append(out.Vertices, canonical(fv.Pos))
		}
		// Triangles are exactly 3 ints, so slot Idx is corner Idx%3 of triangle Idx/3
		out.Triangles[fv.Idx/3][fv.Idx%3] = uniqueID
	}
	return
}
