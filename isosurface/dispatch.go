package isosurface

import (
	"sync"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// cornerBuffer collects the raw corners of every worker. Workers fill a
// private slice per block and hand it over with one locked append.
type cornerBuffer struct {
	mu      sync.Mutex
	corners []FatVertex
}

func (b *cornerBuffer) append(local []FatVertex) {
	if len(local) == 0 {
		return
	}
	b.mu.Lock()
	b.corners = append(b.corners, local...)
	b.mu.Unlock()
}

// dispatchElements polygonizes every element of one type, a block of
// cfg.BlockSize elements at a time
func dispatchElements(buf *cornerBuffer, in *mesh.Mesh, etype utils.ElementType,
	iso float32, cfg *Config) {
	var (
		count   = in.NumElements(etype)
		src, ok = cornerSource(etype)
	)
	if !ok || count == 0 {
		return
	}
	pm := utils.NewBlockPartitionMap(count, cfg.BlockSize)
	utils.ParallelFor(pm, cfg.ParallelDegree, func(bn, kMin, kMax int) {
		var (
			local []FatVertex
			cell  Cell
		)
		for k := kMin; k < kMax; k++ {
			liftCell(in, in.ElementVertices(etype, k), &src, &cell)
			local = polygonizeCell(local, &cell, iso)
		}
		buf.append(local)
	})
}
