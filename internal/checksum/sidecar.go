package checksum

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SidecarName builds the digest sidecar filename for a source file base
// name: "<base>.checksum.<algorithm>".
func SidecarName(base, algorithm string) string {
	return base + ".checksum." + algorithm
}

// AlgorithmFromPath derives the algorithm identifier from a sidecar
// path. The file extension names the algorithm.
func AlgorithmFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !Supported(ext) {
		return "", fmt.Errorf("%w: sidecar extension %q", ErrUnsupported, ext)
	}
	return ext, nil
}

// WriteSidecar writes the hex digest to path. The file holds the digest
// text and nothing else.
func WriteSidecar(path, digest string) error {
	return os.WriteFile(path, []byte(digest), 0644)
}

// ReadSidecar reads the reference digest from path, trimming any
// surrounding whitespace.
func ReadSidecar(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
