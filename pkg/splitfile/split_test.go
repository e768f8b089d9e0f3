package splitfile

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestFile creates a file of n deterministic pseudo-random bytes
// and returns its path and content.
func writeTestFile(t *testing.T, dir string, n int) (string, []byte) {
	t.Helper()
	content := make([]byte, n)
	rand.New(rand.NewSource(int64(n))).Read(content)
	path := filepath.Join(dir, "source.bin")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path, content
}

func TestSplitByCount(t *testing.T) {
	dir := t.TempDir()
	src, content := writeTestFile(t, dir, 1000)
	outDir := filepath.Join(dir, "parts")

	written, err := SplitByCount(src, outDir, 3, SplitOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(outDir, "source.bin.001"),
		filepath.Join(outDir, "source.bin.002"),
		filepath.Join(outDir, "source.bin.003"),
	}, written)

	// 1000 = 334 + 333 + 333, front-loaded
	var joined []byte
	for i, want := range []int{334, 333, 333} {
		data, err := os.ReadFile(written[i])
		require.NoError(t, err)
		assert.Len(t, data, want)
		joined = append(joined, data...)
	}
	assert.True(t, bytes.Equal(content, joined))
}

func TestSplitBySizeNewFile(t *testing.T) {
	dir := t.TempDir()
	src, content := writeTestFile(t, dir, 1000)
	outDir := filepath.Join(dir, "parts")

	written, err := SplitBySize(src, outDir, 300, SplitOptions{Policy: NewFile})
	require.NoError(t, err)
	require.Len(t, written, 4)

	var joined []byte
	for i, want := range []int{300, 300, 300, 100} {
		data, err := os.ReadFile(written[i])
		require.NoError(t, err)
		assert.Len(t, data, want)
		joined = append(joined, data...)
	}
	assert.True(t, bytes.Equal(content, joined))
}

func TestSplitSmallBufferCrossesBoundaries(t *testing.T) {
	// A read chunk smaller than a part, and parts smaller than a chunk,
	// both exercise the mid-chunk boundary slicing.
	dir := t.TempDir()
	src, content := writeTestFile(t, dir, 997)

	for _, bufSize := range []int{1, 7, 64, 997, 4096} {
		outDir := filepath.Join(dir, "parts", fmt.Sprintf("buf%d", bufSize))
		written, err := SplitByCount(src, outDir, 5, SplitOptions{BufferSize: bufSize})
		require.NoError(t, err)

		var joined []byte
		for _, path := range written {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			joined = append(joined, data...)
		}
		require.True(t, bytes.Equal(content, joined), "buffer size %d", bufSize)
		require.NoError(t, os.RemoveAll(outDir))
	}
}

func TestSplitWritesDigestSidecar(t *testing.T) {
	dir := t.TempDir()
	src, content := writeTestFile(t, dir, 5000)
	outDir := filepath.Join(dir, "parts")

	_, err := SplitByCount(src, outDir, 4, SplitOptions{Algorithm: "sha256", BufferSize: 128})
	require.NoError(t, err)

	sidecar := filepath.Join(outDir, "source.bin.checksum.sha256")
	data, err := os.ReadFile(sidecar)
	require.NoError(t, err)

	sum := sha256.Sum256(content)
	// The digest covers the whole original stream, not the parts, and
	// the file holds nothing but the hex text.
	assert.Equal(t, hex.EncodeToString(sum[:]), string(data))
}

func TestSplitPadWidening(t *testing.T) {
	dir := t.TempDir()
	src, _ := writeTestFile(t, dir, 2000)
	outDir := filepath.Join(dir, "parts")

	written, err := SplitByCount(src, outDir, 1000, SplitOptions{})
	require.NoError(t, err)
	require.Len(t, written, 1000)
	assert.Equal(t, filepath.Join(outDir, "source.bin.0001"), written[0])
	assert.Equal(t, filepath.Join(outDir, "source.bin.1000"), written[999])
}

func TestSplitSourceMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := SplitByCount(filepath.Join(dir, "nope.bin"), dir, 3, SplitOptions{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSplitSourceEmpty(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(src, nil, 0644))

	_, err := SplitByCount(src, dir, 3, SplitOptions{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestSplitUnsupportedAlgorithm(t *testing.T) {
	dir := t.TempDir()
	src, _ := writeTestFile(t, dir, 100)
	outDir := filepath.Join(dir, "parts")

	_, err := SplitByCount(src, outDir, 2, SplitOptions{Algorithm: "crc32"})
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	// No output directory pollution from the failed split
	_, statErr := os.Stat(filepath.Join(outDir, "source.bin.001"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSplitRejectionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src, _ := writeTestFile(t, dir, 10)
	outDir := filepath.Join(dir, "parts")

	_, err := SplitByCount(src, outDir, 100, SplitOptions{})
	require.ErrorIs(t, err, ErrPartTooSmall)

	_, err = SplitBySize(src, outDir, 11, SplitOptions{})
	require.ErrorIs(t, err, ErrSizeExceedsFile)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}
