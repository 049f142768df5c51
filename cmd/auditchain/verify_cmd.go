package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/evidify-labs/auditchain/pkg/verifier"
)

// runVerifyCmd implements `auditchain verify`.
//
// Reads an exported bundle file, validates its shape against the bundle
// schema, then re-derives every hash from the event payloads.
//
// Exit codes:
//
//	0 = chain valid
//	1 = chain invalid
//	2 = runtime error
func runVerifyCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("verify", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		bundlePath string
		jsonOutput bool
	)
	cmd.StringVar(&bundlePath, "bundle", "", "Path to exported bundle JSON file (REQUIRED)")
	cmd.BoolVar(&jsonOutput, "json", false, "Output the verification result as JSON")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if bundlePath == "" {
		_, _ = fmt.Fprintln(stderr, "Error: -bundle is required")
		return 2
	}

	data, err := os.ReadFile(bundlePath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: cannot read bundle: %v\n", err)
		return 2
	}

	// Shape check before decoding, so a malformed export fails with a
	// schema error instead of a misleading hash mismatch.
	if err := validateBundleShape(data); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: bundle does not match export schema: %v\n", err)
		return 2
	}

	var bundle verifier.Bundle
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&bundle); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: cannot decode bundle: %v\n", err)
		return 2
	}

	slog.Debug("verifying bundle",
		"path", bundlePath,
		"events", len(bundle.Events),
		"entries", len(bundle.Entries))

	result := bundle.Verify()

	if jsonOutput {
		out, _ := json.MarshalIndent(result, "", "  ")
		_, _ = fmt.Fprintln(stdout, string(out))
	} else if result.Valid {
		_, _ = fmt.Fprintf(stdout, "PASS: chain of %d entries verified\n", len(bundle.Entries))
	} else if result.Index >= 0 {
		_, _ = fmt.Fprintf(stdout, "FAIL: %s at index %d\n", result.Error, result.Index)
	} else {
		_, _ = fmt.Fprintf(stdout, "FAIL: %s\n", result.Error)
	}

	if !result.Valid {
		return 1
	}
	return 0
}
