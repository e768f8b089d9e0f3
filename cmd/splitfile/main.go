package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apirJS/splitfile/internal/checksum"
	"github.com/apirJS/splitfile/pkg/splitfile"
)

// Exit codes
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitInvalidArgs      = 2
	ExitNotFound         = 3
	ExitEmptyInput       = 4
	ExitChecksumMismatch = 5
	ExitUnsupportedAlgo  = 6
	ExitValidationFailed = 7
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return ExitInvalidArgs
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "split":
		return runSplit(cmdArgs)
	case "merge":
		return runMerge(cmdArgs)
	case "verify":
		return runVerify(cmdArgs)
	case "algorithms":
		fmt.Println(strings.Join(checksum.Names(), "\n"))
		return ExitSuccess
	case "help", "-h", "--help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return ExitInvalidArgs
	}
}

// exitCode maps library errors to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, splitfile.ErrInvalidArgument),
		errors.Is(err, splitfile.ErrPartTooSmall),
		errors.Is(err, splitfile.ErrSizeExceedsFile):
		return ExitInvalidArgs
	case errors.Is(err, splitfile.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, splitfile.ErrEmptyInput):
		return ExitEmptyInput
	case errors.Is(err, splitfile.ErrChecksumMismatch):
		return ExitChecksumMismatch
	case errors.Is(err, splitfile.ErrUnsupportedAlgorithm):
		return ExitUnsupportedAlgo
	default:
		return ExitGeneralError
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: splitfile <command> [options]

Commands:
  split       Partition a file into indexed part files
  merge       Reassemble part files into the original file
  verify      Check that every part of a set exists and is non-empty
  algorithms  List supported checksum algorithms

Run 'splitfile <command> -h' for command-specific help.`)
}
