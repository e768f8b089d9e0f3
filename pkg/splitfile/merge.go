package splitfile

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/apirJS/splitfile/internal/checksum"
)

// MergeOptions configures a merge operation.
type MergeOptions struct {
	// ChecksumPath names a digest sidecar to verify the merged output
	// against. Its file extension selects the hash algorithm. Empty
	// means no verification.
	ChecksumPath string

	// DeleteParts removes the part files, but only after the
	// destination has been fully written and renamed into place.
	DeleteParts bool

	// BufferSize overrides the copy chunk size. Zero means the default.
	BufferSize int
}

// Merge reassembles part files into a single file at dest. Parts are
// ordered by the numeric index embedded in their filenames, so the
// caller's list order does not matter. The destination is written to a
// temporary sibling and renamed into place only after every part has
// been copied and the digest (when requested) verified.
func Merge(partPaths []string, dest string, opts MergeOptions) error {
	if err := merge(partPaths, dest, opts); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}

func merge(partPaths []string, dest string, opts MergeOptions) error {
	if len(partPaths) == 0 {
		return fmt.Errorf("empty part list: %w", ErrInvalidArgument)
	}

	var hasher hash.Hash
	if opts.ChecksumPath != "" {
		algorithm, err := checksum.AlgorithmFromPath(opts.ChecksumPath)
		if err != nil {
			return err
		}
		if hasher, err = checksum.New(algorithm); err != nil {
			return err
		}
	}

	ordered := sortParts(partPaths)

	// Validate every part before the destination is touched. Existence
	// is checked before the size so the error ordering is consistent
	// across platforms.
	for _, path := range ordered {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("part %s: %w", path, ErrNotFound)
			}
			return fmt.Errorf("stat part %s: %w", path, err)
		}
		if info.Size() == 0 {
			return fmt.Errorf("part %s: %w", path, ErrEmptyInput)
		}
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create destination directory: %w", err)
		}
	}

	tmp := dest + ".merge-" + uuid.NewString()
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}
	buf := make([]byte, bufSize)

	var dst io.Writer = out
	if hasher != nil {
		dst = io.MultiWriter(out, hasher)
	}

	for _, path := range ordered {
		if err := copyPart(dst, path, buf); err != nil {
			out.Close()
			os.Remove(tmp)
			return err
		}
	}

	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close destination: %w", err)
	}

	if hasher != nil {
		reference, err := checksum.ReadSidecar(opts.ChecksumPath)
		if err != nil {
			os.Remove(tmp)
			return fmt.Errorf("read digest sidecar: %w", err)
		}
		if actual := hex.EncodeToString(hasher.Sum(nil)); actual != reference {
			os.Remove(tmp)
			return fmt.Errorf("expected %s, got %s: %w", reference, actual, ErrChecksumMismatch)
		}
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize destination: %w", err)
	}

	if opts.DeleteParts {
		for _, path := range ordered {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove part %s: %w", path, err)
			}
		}
	}

	return nil
}

// copyPart streams one part into dst through buf.
func copyPart(dst io.Writer, path string, buf []byte) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open part %s: %w", path, err)
	}
	defer in.Close()

	if _, err := io.CopyBuffer(dst, in, buf); err != nil {
		return fmt.Errorf("copy part %s: %w", path, err)
	}
	return nil
}
