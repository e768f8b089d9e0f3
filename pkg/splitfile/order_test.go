package splitfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartIndex(t *testing.T) {
	tests := []struct {
		path  string
		index int64
		ok    bool
	}{
		{path: "data.bin.001", index: 1, ok: true},
		{path: "data.bin.042", index: 42, ok: true},
		{path: "/tmp/out/archive.tar.1000", index: 1000, ok: true},
		{path: "data.007.bin", index: 7, ok: true},
		{path: "part12", index: 12, ok: true},
		{path: "file2.txt.003", index: 3, ok: true},
		{path: "readme.txt", ok: false},
		{path: "noindex", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			idx, ok := partIndex(tt.path)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.index, idx)
			}
		})
	}
}

func TestSortParts(t *testing.T) {
	shuffled := []string{
		"out/data.bin.003",
		"out/data.bin.001",
		"out/data.bin.010",
		"out/data.bin.002",
	}
	assert.Equal(t, []string{
		"out/data.bin.001",
		"out/data.bin.002",
		"out/data.bin.003",
		"out/data.bin.010",
	}, sortParts(shuffled))

	// Input order is preserved
	assert.Equal(t, "out/data.bin.003", shuffled[0])
}

func TestSortPartsIndexlessLast(t *testing.T) {
	ordered := sortParts([]string{"stray.txt", "data.002", "data.001"})
	assert.Equal(t, []string{"data.001", "data.002", "stray.txt"}, ordered)
}
