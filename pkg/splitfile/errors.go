package splitfile

import (
	"errors"

	"github.com/apirJS/splitfile/internal/checksum"
)

// Sentinel errors returned by planning, splitting and merging. They are
// always wrapped with context about the failing operation, so callers
// should test them with errors.Is.
var (
	// ErrNotFound is returned when the source file or a named part does
	// not exist.
	ErrNotFound = errors.New("file not found")

	// ErrEmptyInput is returned for a zero-length source file or part.
	ErrEmptyInput = errors.New("file is empty")

	// ErrInvalidArgument is returned for an out-of-range part count or
	// size, or an empty part list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSizeExceedsFile is returned when the requested part size is
	// larger than the file being split.
	ErrSizeExceedsFile = errors.New("part size exceeds file size")

	// ErrPartTooSmall is returned when more parts are requested than
	// there are bytes in the file.
	ErrPartTooSmall = errors.New("part size below one byte")

	// ErrChecksumMismatch is returned when the digest of the merged
	// output differs from the reference digest.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupportedAlgorithm is returned for an unknown checksum
	// algorithm name or sidecar extension.
	ErrUnsupportedAlgorithm = checksum.ErrUnsupported
)
