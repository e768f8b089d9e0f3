package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/apirJS/splitfile/internal/config"
	"github.com/apirJS/splitfile/pkg/logger"
	"github.com/apirJS/splitfile/pkg/splitfile"
)

// runVerify audits a part set: every listed part must exist and be
// non-empty.
func runVerify(args []string) int {
	fs := pflag.NewFlagSet("verify", pflag.ExitOnError)

	workers := fs.Int("workers", 0, "Concurrent checks (0 = config default)")
	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: splitfile verify [options] <part>...

Check that every part of a set exists and is non-empty.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
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
	if *workers <= 0 {
		*workers = cfg.VerifyWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := splitfile.VerifyParts(ctx, fs.Args(), *workers)
	if err != nil {
		lg.Error("Verify failed", slog.Any("error", err))
		return exitCode(err)
	}

	if !result.Valid {
		for _, problem := range result.Problems {
			fmt.Fprintln(os.Stderr, problem)
		}
		lg.Error("Part set is incomplete",
			slog.Int("missing", result.Missing),
			slog.Int("empty", result.Empty))
		return ExitValidationFailed
	}

	lg.Info("Part set is complete",
		slog.Int("parts", result.PartCount),
		slog.Int64("total_size", result.TotalSize))
	return ExitSuccess
}
