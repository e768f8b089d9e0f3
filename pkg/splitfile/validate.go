package splitfile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// VerifyResult reports the outcome of auditing a part set.
type VerifyResult struct {
	Valid     bool     // true when every part exists and is non-empty
	PartCount int      // number of parts checked
	TotalSize int64    // combined size of the parts that exist
	Missing   int      // parts that do not exist
	Empty     int      // parts that exist but hold zero bytes
	Problems  []string // one message per missing or empty part
}

// VerifyParts audits a part set without reading part contents: every
// path must exist and be non-empty. Missing or empty parts are reported
// in the result, not as errors; only infrastructure failures (a stat
// error other than not-exist, or context cancellation) return an error.
// Up to workers paths are checked concurrently.
func VerifyParts(ctx context.Context, partPaths []string, workers int) (*VerifyResult, error) {
	if len(partPaths) == 0 {
		return nil, fmt.Errorf("verify: empty part list: %w", ErrInvalidArgument)
	}
	if workers < 1 {
		workers = 1
	}

	result := &VerifyResult{
		Valid:     true,
		PartCount: len(partPaths),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range sortParts(partPaths) {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info, err := os.Stat(path)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case os.IsNotExist(err):
				result.Valid = false
				result.Missing++
				result.Problems = append(result.Problems, fmt.Sprintf("part missing: %s", path))
			case err != nil:
				return fmt.Errorf("verify: stat part %s: %w", path, err)
			case info.Size() == 0:
				result.Valid = false
				result.Empty++
				result.Problems = append(result.Problems, fmt.Sprintf("part empty: %s", path))
			default:
				result.TotalSize += info.Size()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
