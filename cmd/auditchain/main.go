// Command auditchain is the offline companion tool for exported study
// ledgers: it verifies chain integrity of an exported bundle and computes
// canonical forms and content hashes for cross-implementation checks.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint, split out for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if len(args) < 2 {
		printUsage(stderr)
		return 2
	}

	switch args[1] {
	case "verify":
		return runVerifyCmd(args[2:], stdout, stderr)
	case "hash":
		return runHashCmd(args[2:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[1])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `auditchain - tamper-evident study ledger tools

Usage:
  auditchain verify -bundle <file> [-json]   Verify an exported chain bundle
  auditchain hash [-in <file>]               Canonicalize a JSON payload and print its content hash
  auditchain help                            Show this help

Exit codes:
  0 = success / chain valid
  1 = chain invalid
  2 = usage or runtime error
`)
}
