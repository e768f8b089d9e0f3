package splitfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPartsComplete(t *testing.T) {
	parts, _, _ := splitForMerge(t, 2500, 5, SplitOptions{})

	result, err := VerifyParts(context.Background(), parts, 4)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 5, result.PartCount)
	assert.Equal(t, int64(2500), result.TotalSize)
	assert.Empty(t, result.Problems)
}

func TestVerifyPartsMissingAndEmpty(t *testing.T) {
	parts, _, _ := splitForMerge(t, 2500, 5, SplitOptions{})
	require.NoError(t, os.Remove(parts[0]))
	require.NoError(t, os.WriteFile(parts[3], nil, 0644))

	result, err := VerifyParts(context.Background(), parts, 2)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, 1, result.Missing)
	assert.Equal(t, 1, result.Empty)
	assert.Len(t, result.Problems, 2)
}

func TestVerifyPartsEmptyList(t *testing.T) {
	_, err := VerifyParts(context.Background(), nil, 4)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestVerifyPartsCancelled(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 50)
	for i := range paths {
		paths[i] = filepath.Join(dir, "part")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := VerifyParts(ctx, paths, 1)
	require.ErrorIs(t, err, context.Canceled)
}
