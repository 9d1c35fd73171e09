package readers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/notargets/isosurf/mesh"
)

// ZstdExt marks a zstd compressed file, it may follow any supported extension
const ZstdExt = ".zst"

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*mesh.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(filename, ZstdExt)))

	switch ext {
	case ".msh":
		return ReadGmsh22(filename)
	case ".su2":
		return ReadSU2(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

type zstdFile struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

// openFile opens filename for reading, decompressing on the fly when the name
// ends in .zst
func openFile(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, ZstdExt) {
		return file, nil
	}
	dec, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &zstdFile{Decoder: dec, file: file}, nil
}
