package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/cenkalti/backoff"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/apirJS/splitfile/internal/config"
	"github.com/apirJS/splitfile/pkg/logger"
	"github.com/apirJS/splitfile/pkg/splitfile"
)

// runSplit partitions a source file into indexed part files, optionally
// writing a whole-file digest sidecar next to them.
func runSplit(args []string) int {
	fs := pflag.NewFlagSet("split", pflag.ExitOnError)

	out := fs.String("out", ".", "Output directory for parts (created if absent)")
	parts := fs.Int("parts", 0, "Number of parts to split into")
	partSize := fs.String("part-size", "", "Size of each part (e.g. 8MB)")
	algorithm := fs.String("checksum", "", "Checksum algorithm for the digest sidecar")
	newFile := fs.Bool("new-file", false, "Place remainder bytes in one extra terminal part instead of distributing them")
	deleteSource := fs.Bool("delete-source", false, "Remove the source file after a successful split")
	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: splitfile split [options] <source>

Partition a file into indexed part files. Exactly one of --parts and
--part-size must be given.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one source file is required")
		fs.Usage()
		return ExitInvalidArgs
	}
	if (*parts > 0) == (*partSize != "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of --parts and --part-size is required")
		fs.Usage()
		return ExitInvalidArgs
	}

	src := fs.Arg(0)
	lg := logger.GetLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		lg.Error("Failed to load config", slog.Any("error", err))
		return ExitGeneralError
	}
	cfg = cfg.WithEnv()

	if *algorithm == "" {
		*algorithm = cfg.Algorithm
	}

	policy := splitfile.Distribute
	if *newFile {
		policy = splitfile.NewFile
	}
	opts := splitfile.SplitOptions{
		Policy:     policy,
		Algorithm:  *algorithm,
		BufferSize: int(cfg.BufferSize),
	}

	var written []string
	if *parts > 0 {
		written, err = splitfile.SplitByCount(src, *out, *parts, opts)
	} else {
		var size int64
		if size, err = parsePartSize(*partSize); err == nil {
			written, err = splitfile.SplitBySize(src, *out, size, opts)
		}
	}
	if err != nil {
		lg.Error("Split failed", slog.String("source", src), slog.Any("error", err))
		return exitCode(err)
	}

	lg.Info("Split complete",
		slog.String("source", src),
		slog.Int("parts", len(written)),
		slog.String("out", *out))
	for _, path := range written {
		lg.Debug("Wrote part", slog.String("path", path))
	}

	if *deleteSource {
		if err := removeWithRetry(src, lg); err != nil {
			lg.Error("Failed to remove source", slog.String("source", src), slog.Any("error", err))
			return ExitGeneralError
		}
		lg.Info("Removed source", slog.String("source", src))
	}

	return ExitSuccess
}

// parsePartSize parses a part size given as plain bytes or with a unit
// suffix. A bare fractional number is rejected rather than truncated.
func parsePartSize(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return 0, fmt.Errorf("fractional byte size %q: %w", s, splitfile.ErrInvalidArgument)
	}
	v, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("part size %q: %w", s, splitfile.ErrInvalidArgument)
	}
	return int64(v), nil
}

// removeWithRetry deletes a file, retrying with exponential backoff to
// ride out transient locks (antivirus scanners, editors) on platforms
// that hold files open.
func removeWithRetry(path string, lg *slog.Logger) error {
	var attempt int
	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)

	return backoff.Retry(func() error {
		attempt++
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			lg.Warn("Remove failed", slog.Int("attempt", attempt), slog.String("error", err.Error()))
			return err
		}
		return nil
	}, bo)
}
