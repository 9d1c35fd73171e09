package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/notargets/isosurf/mesh"
)

// ZstdExt marks a zstd compressed output, it may follow any supported extension
const ZstdExt = ".zst"

// WriteMeshFile writes a mesh file based on extension
func WriteMeshFile(filename string, m *mesh.Mesh) (err error) {
	var (
		compressed = strings.HasSuffix(filename, ZstdExt)
		ext        = strings.ToLower(filepath.Ext(strings.TrimSuffix(filename, ZstdExt)))
		write      func(io.Writer, *mesh.Mesh) error
	)
	switch ext {
	case ".stl":
		write = WriteSTL
	case ".msh":
		write = WriteGmsh22
	default:
		return fmt.Errorf("unsupported output format: %s", ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if !compressed {
		return write(file, m)
	}
	enc, err := zstd.NewWriter(file, zstd.WithEncoderConcurrency(runtime.NumCPU()))
	if err != nil {
		return err
	}
	if err = write(enc, m); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
