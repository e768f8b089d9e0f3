package splitfile

import "fmt"

// indexWidth returns the zero-padding width for part indexes: at least
// three digits, widening when the plan has more than 999 parts.
func indexWidth(partCount int) int {
	width := 3
	for limit := 1000; partCount >= limit; limit *= 10 {
		width++
	}
	return width
}

// partName builds the filename for one part: the source base name with
// the 1-based zero-padded index appended.
func partName(base string, index, width int) string {
	return fmt.Sprintf("%s.%0*d", base, width, index)
}
