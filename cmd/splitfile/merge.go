package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/apirJS/splitfile/internal/config"
	"github.com/apirJS/splitfile/pkg/logger"
	"github.com/apirJS/splitfile/pkg/splitfile"
)

// runMerge reassembles part files into a single destination file,
// optionally verifying the result against a digest sidecar.
func runMerge(args []string) int {
	fs := pflag.NewFlagSet("merge", pflag.ExitOnError)

	dest := fs.String("dest", "", "Destination file path (required)")
	checksumPath := fs.String("checksum", "", "Digest sidecar to verify the merged output against")
	deleteParts := fs.Bool("delete-parts", false, "Remove part files after a successful merge")
	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: splitfile merge [options] <part>...

Reassemble part files into the original file. Parts may be listed in any
order; they are sorted by the index embedded in their filenames.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}
	if *dest == "" {
		fmt.Fprintln(os.Stderr, "Error: --dest is required")
		fs.Usage()
		return ExitInvalidArgs
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one part file is required")
		fs.Usage()
		return ExitInvalidArgs
	}

	lg := logger.GetLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		lg.Error("Failed to load config", slog.Any("error", err))
		return ExitGeneralError
	}
	cfg = cfg.WithEnv()

	err = splitfile.Merge(fs.Args(), *dest, splitfile.MergeOptions{
		ChecksumPath: *checksumPath,
		DeleteParts:  *deleteParts,
		BufferSize:   int(cfg.BufferSize),
	})
	if err != nil {
		lg.Error("Merge failed", slog.String("dest", *dest), slog.Any("error", err))
		return exitCode(err)
	}

	lg.Info("Merge complete",
		slog.String("dest", *dest),
		slog.Int("parts", fs.NArg()),
		slog.Bool("verified", *checksumPath != ""))
	return ExitSuccess
}
