package sed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// gzipSuffix marks files stored compressed in the library.
const gzipSuffix = ".gz"

// IsCompressed reports whether path names a gzip-compressed SED file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, gzipSuffix)
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// openSED opens path for reading, decompressing it when the name ends in .gz.
// The caller must close the returned reader.
func openSED(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !IsCompressed(path) {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	return &gzipFile{Reader: zr, f: f}, nil
}
