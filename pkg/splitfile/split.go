package splitfile

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/apirJS/splitfile/internal/checksum"
)

// defaultBufferSize is the read chunk size used when the caller does
// not override it.
const defaultBufferSize = 1 << 20

// SplitOptions configures a split operation.
type SplitOptions struct {
	// Policy selects what happens to remainder bytes. The zero value is
	// Distribute.
	Policy ExtraBytesPolicy

	// Algorithm names the checksum algorithm for the digest sidecar.
	// Empty means no digest is computed.
	Algorithm string

	// BufferSize overrides the read chunk size. Zero means the default.
	BufferSize int
}

// SplitByCount splits the file at src into count parts written to
// outDir, returning the ordered part paths.
func SplitByCount(src, outDir string, count int, opts SplitOptions) ([]string, error) {
	size, err := sourceSize(src)
	if err != nil {
		return nil, fmt.Errorf("split failed: %w", err)
	}
	plan, err := PlanByCount(size, count, opts.Policy)
	if err != nil {
		return nil, fmt.Errorf("split failed: %w", err)
	}
	return Split(src, outDir, plan, opts)
}

// SplitBySize splits the file at src into parts of partSize bytes each
// written to outDir, returning the ordered part paths.
func SplitBySize(src, outDir string, partSize int64, opts SplitOptions) ([]string, error) {
	size, err := sourceSize(src)
	if err != nil {
		return nil, fmt.Errorf("split failed: %w", err)
	}
	plan, err := PlanBySize(size, partSize, opts.Policy)
	if err != nil {
		return nil, fmt.Errorf("split failed: %w", err)
	}
	return Split(src, outDir, plan, opts)
}

// Split streams the file at src once, redirecting its bytes into one
// output file per plan entry under outDir. Partially written parts are
// removed before an error is returned, so a failed split leaves no
// output behind.
func Split(src, outDir string, plan *Plan, opts SplitOptions) ([]string, error) {
	written, err := writeParts(src, outDir, plan, opts)
	if err != nil {
		for _, path := range written {
			os.Remove(path)
		}
		return nil, fmt.Errorf("split failed: %w", err)
	}
	return written, nil
}

// sourceSize validates the source file and returns its size. Existence
// is checked before the size so the error ordering is consistent across
// platforms.
func sourceSize(src string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("source %s: %w", src, ErrNotFound)
		}
		return 0, fmt.Errorf("stat source: %w", err)
	}
	if info.Size() == 0 {
		return 0, fmt.Errorf("source %s: %w", src, ErrEmptyInput)
	}
	return info.Size(), nil
}

func writeParts(src, outDir string, plan *Plan, opts SplitOptions) ([]string, error) {
	if plan == nil || len(plan.PartSizes) == 0 {
		return nil, fmt.Errorf("empty plan: %w", ErrInvalidArgument)
	}

	size, err := sourceSize(src)
	if err != nil {
		return nil, err
	}
	if total := plan.TotalSize(); total != size {
		return nil, fmt.Errorf("plan covers %d bytes, source has %d: %w", total, size, ErrInvalidArgument)
	}

	var hasher hash.Hash
	if opts.Algorithm != "" {
		if hasher, err = checksum.New(opts.Algorithm); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}

	base := filepath.Base(src)
	width := indexWidth(len(plan.PartSizes))
	buf := make([]byte, bufSize)

	written := make([]string, 0, len(plan.PartSizes))
	var out *os.File
	partIdx := 0
	var bytesInPart int64

	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			// The raw chunk feeds the hasher exactly once, before it is
			// sliced across part boundaries.
			if hasher != nil {
				hasher.Write(buf[:n])
			}

			chunk := buf[:n]
			for len(chunk) > 0 {
				if partIdx >= len(plan.PartSizes) {
					return written, fmt.Errorf("source grew beyond plan during split")
				}
				if out == nil {
					path := filepath.Join(outDir, partName(base, partIdx+1, width))
					if out, err = os.Create(path); err != nil {
						return written, fmt.Errorf("create part %d: %w", partIdx+1, err)
					}
					written = append(written, path)
					bytesInPart = 0
				}

				take := plan.PartSizes[partIdx] - bytesInPart
				if take > int64(len(chunk)) {
					take = int64(len(chunk))
				}
				if _, err := out.Write(chunk[:take]); err != nil {
					out.Close()
					return written, fmt.Errorf("write part %d: %w", partIdx+1, err)
				}
				bytesInPart += take
				chunk = chunk[take:]

				if bytesInPart == plan.PartSizes[partIdx] {
					if err := out.Close(); err != nil {
						return written, fmt.Errorf("close part %d: %w", partIdx+1, err)
					}
					out = nil
					partIdx++
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if out != nil {
				out.Close()
			}
			return written, fmt.Errorf("read source: %w", readErr)
		}
	}

	if out != nil || partIdx != len(plan.PartSizes) {
		if out != nil {
			out.Close()
		}
		return written, fmt.Errorf("source shrank below plan during split")
	}

	if hasher != nil {
		digest := hex.EncodeToString(hasher.Sum(nil))
		sidecar := filepath.Join(outDir, checksum.SidecarName(base, opts.Algorithm))
		if err := checksum.WriteSidecar(sidecar, digest); err != nil {
			os.Remove(sidecar)
			return written, fmt.Errorf("write digest sidecar: %w", err)
		}
	}

	return written, nil
}
