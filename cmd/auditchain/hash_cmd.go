package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evidify-labs/auditchain/pkg/canonicaljson"
	"github.com/evidify-labs/auditchain/pkg/ledger"
)

// runHashCmd implements `auditchain hash`: canonicalize a JSON payload and
// print its canonical form and content hash. Useful for confirming that an
// independent implementation derives the same digest from the same payload.
//
// Exit codes:
//
//	0 = success
//	2 = runtime error
func runHashCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("hash", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		inPath     string
		jsonOutput bool
	)
	cmd.StringVar(&inPath, "in", "", "Path to JSON payload file (default: stdin)")
	cmd.BoolVar(&jsonOutput, "json", false, "Output canonical form and hash as JSON")

	if err := cmd.Parse(args); err != nil {
		return 2
	}

	var (
		data []byte
		err  error
	)
	if inPath == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inPath)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: cannot read payload: %v\n", err)
		return 2
	}

	var payload canonicaljson.Value
	if err := json.Unmarshal(data, &payload); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: payload is not valid JSON: %v\n", err)
		return 2
	}

	canonical := canonicaljson.Canonicalize(payload)
	hash := ledger.ContentHash(payload)

	if jsonOutput {
		out, _ := json.Marshal(map[string]string{
			"canonical":   canonical,
			"contentHash": hash,
		})
		_, _ = fmt.Fprintln(stdout, string(out))
		return 0
	}
	_, _ = fmt.Fprintln(stdout, canonical)
	_, _ = fmt.Fprintln(stdout, hash)
	return 0
}
