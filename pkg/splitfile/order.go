package splitfile

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// partIndexPattern captures the last run of digits at the end of a
// filename, optionally followed by one final extension. This matches
// both "data.bin.007" and "data.007.bin".
var partIndexPattern = regexp.MustCompile(`(\d+)(?:\.[^.]*)?$`)

// partIndex extracts the sequential index embedded in a part filename.
// The second return value is false when the name carries no index.
func partIndex(path string) (int64, bool) {
	m := partIndexPattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	idx, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// sortParts orders part paths by their embedded numeric index,
// ascending. Paths without an index sort to the end. The sort is stable
// so the caller's order breaks ties. The input slice is not modified.
func sortParts(paths []string) []string {
	ordered := make([]string, len(paths))
	copy(ordered, paths)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, aok := partIndex(ordered[i])
		b, bok := partIndex(ordered[j])
		if aok != bok {
			return aok
		}
		return a < b
	})
	return ordered
}
