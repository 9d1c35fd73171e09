// Package isosurface extracts triangulated iso-surfaces from unstructured
// volume meshes of tetrahedra, pyramids, wedges and hexahedra carrying a
// per-vertex scalar field.
//
// Every element is mapped onto an 8-corner cell and run through one
// marching-cubes kernel. Elements are processed in blocks on parallel
// workers; the resulting triangle corners are sorted, merged into unique
// vertices and returned as an indexed triangle mesh.
package isosurface

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/notargets/isosurf/mesh"
	"github.com/notargets/isosurf/utils"
)

// DefaultBlockSize is the number of elements a worker polygonizes before
// handing its triangles to the shared buffer
const DefaultBlockSize = 1024

var (
	ErrNilMesh       = errors.New("null input mesh")
	ErrNoScalarField = errors.New("input mesh has no per-vertex scalar field")
)

type Config struct {
	BlockSize      int // Elements per work block
	ParallelDegree int // Number of worker goroutines
	Verbose        bool
	Logger         *log.Logger // Progress output when Verbose, log.Default() if nil
}

func DefaultConfig() *Config {
	return &Config{
		BlockSize:      DefaultBlockSize,
		ParallelDegree: runtime.NumCPU(),
	}
}

type Option func(*Config)

func WithBlockSize(n int) Option {
	return func(c *Config) { c.BlockSize = n }
}

func WithParallelDegree(n int) Option {
	return func(c *Config) { c.ParallelDegree = n }
}

func WithVerbose(verbose bool) Option {
	return func(c *Config) { c.Verbose = verbose }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func newConfig(opts []Option) (cfg *Config) {
	cfg = DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.BlockSize < 1 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.ParallelDegree < 1 {
		cfg.ParallelDegree = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return
}

func (cfg *Config) logf(format string, args ...interface{}) {
	if cfg.Verbose {
		cfg.Logger.Printf(format, args...)
	}
}

var pluralNames = map[utils.ElementType]string{
	utils.Tet:     "tets",
	utils.Pyramid: "pyramids",
	utils.Prism:   "wedges",
	utils.Hex:     "hexes",
}

// ExtractIsoSurface returns a new mesh holding the triangles where the scalar
// field of in crosses isoValue. The output carries only Vertices and
// Triangles. Surface elements of the input are ignored and the input is not
// modified.
func ExtractIsoSurface(in *mesh.Mesh, isoValue float32, opts ...Option) (*mesh.Mesh, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	return extract(in, isoValue, newConfig(opts)), nil
}

// ExtractIsoSurfaces runs one extraction per iso-value
func ExtractIsoSurfaces(in *mesh.Mesh, isoValues []float32, opts ...Option) ([]*mesh.Mesh, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	var (
		cfg = newConfig(opts)
		out = make([]*mesh.Mesh, len(isoValues))
	)
	for i, iso := range isoValues {
		cfg.logf("#iso: extracting iso-value %g (%d of %d)", iso, i+1, len(isoValues))
		out[i] = extract(in, iso, cfg)
	}
	return out, nil
}

func checkInput(in *mesh.Mesh) error {
	switch {
	case in == nil:
		return ErrNilMesh
	case in.Scalars == nil:
		return ErrNoScalarField
	case len(in.Scalars) != len(in.Vertices):
		return fmt.Errorf("%w: %d scalars, %d vertices",
			mesh.ErrScalarLength, len(in.Scalars), len(in.Vertices))
	}
	return nil
}

func extract(in *mesh.Mesh, iso float32, cfg *Config) *mesh.Mesh {
	buf := &cornerBuffer{}
	for _, et := range utils.VolumeElementTypes {
		cfg.logf("#iso: pushing %d %s", in.NumElements(et), pluralNames[et])
		dispatchElements(buf, in, et, iso, cfg)
	}
	cfg.logf("#iso: found %d triangles", len(buf.corners)/3)
	out := buildIndexedMesh(buf.corners, cfg.ParallelDegree)
	cfg.logf("#iso: found %d unique vertices", len(out.Vertices))
	return out
}
