package splitfile

import "fmt"

// ExtraBytesPolicy selects what happens to the bytes left over after
// dividing the file size evenly.
type ExtraBytesPolicy int

const (
	// Distribute spreads the remainder across the planned parts, one
	// extra byte at a time starting from the first part.
	Distribute ExtraBytesPolicy = iota

	// NewFile keeps every planned part at its base size and appends one
	// terminal part holding exactly the remainder.
	NewFile
)

// Plan is the sizing result of a split request. PartSizes is ordered,
// every entry is positive, and the entries sum to the source file size
// exactly.
type Plan struct {
	PartSizes []int64
}

// PartCount returns the number of parts in the plan.
func (p *Plan) PartCount() int {
	return len(p.PartSizes)
}

// TotalSize returns the sum of all part sizes.
func (p *Plan) TotalSize() int64 {
	var total int64
	for _, s := range p.PartSizes {
		total += s
	}
	return total
}

// PlanByCount computes part sizes for splitting a file of fileSize bytes
// into count parts. The base part size is fileSize/count; the remainder
// is placed according to policy.
func PlanByCount(fileSize int64, count int, policy ExtraBytesPolicy) (*Plan, error) {
	if fileSize <= 0 {
		return nil, fmt.Errorf("plan: file size %d: %w", fileSize, ErrEmptyInput)
	}
	if count < 1 {
		return nil, fmt.Errorf("plan: part count %d: %w", count, ErrInvalidArgument)
	}

	base := fileSize / int64(count)
	if base < 1 {
		return nil, fmt.Errorf("plan: %d parts for %d bytes: %w", count, fileSize, ErrPartTooSmall)
	}

	return buildPlan(base, count, fileSize%int64(count), policy), nil
}

// PlanBySize computes part sizes for splitting a file of fileSize bytes
// into parts of partSize bytes each. The remainder after the last full
// part is placed according to policy.
func PlanBySize(fileSize, partSize int64, policy ExtraBytesPolicy) (*Plan, error) {
	if fileSize <= 0 {
		return nil, fmt.Errorf("plan: file size %d: %w", fileSize, ErrEmptyInput)
	}
	if partSize <= 0 {
		return nil, fmt.Errorf("plan: part size %d: %w", partSize, ErrInvalidArgument)
	}
	if partSize > fileSize {
		return nil, fmt.Errorf("plan: part size %d for %d bytes: %w", partSize, fileSize, ErrSizeExceedsFile)
	}

	count := int(fileSize / partSize)
	return buildPlan(partSize, count, fileSize%partSize, policy), nil
}

// buildPlan lays out count parts of base bytes each and places the
// remainder. All arithmetic is integer so the sizes always sum to
// base*count+remainder with no rounding drift.
func buildPlan(base int64, count int, remainder int64, policy ExtraBytesPolicy) *Plan {
	sizes := make([]int64, count)
	for i := range sizes {
		sizes[i] = base
	}

	switch {
	case remainder == 0:
		// Even split, nothing to place.
	case policy == NewFile:
		sizes = append(sizes, remainder)
	default:
		// Front-loaded distribution: the first extraRem parts carry one
		// byte more than the rest.
		extraBase := remainder / int64(count)
		extraRem := remainder % int64(count)
		for i := range sizes {
			sizes[i] += extraBase
			if int64(i) < extraRem {
				sizes[i]++
			}
		}
	}

	return &Plan{PartSizes: sizes}
}
