// Package verifier provides stateless, offline chain verification.
//
// It is intentionally minimal with zero server or network dependencies:
// a third party holding only an exported (events, entries) pair can
// re-derive every hash and confirm the recorded sequence without access
// to the live chain that produced it. The verifier trusts only SHA-256
// and the canonical serialization and chain record formats.
package verifier

import "github.com/evidify-labs/auditchain/pkg/ledger"

// VerifyChainFromData verifies two independently supplied parallel
// sequences. It never returns a Go error: any input, including
// maliciously crafted input, yields a structured Result.
//
// The length check runs first; on mismatch nothing past the shorter
// sequence is touched. Then each index gets the four chain checks plus a
// cross-check that the entry still points at the event beside it, which
// catches sequences that were truncated or reordered independently even
// when each one is internally consistent. The scan is fail-fast: the
// reported index is always the lowest failing one.
func VerifyChainFromData(events []ledger.Event, entries []ledger.Entry) ledger.Result {
	if len(events) != len(entries) {
		return ledger.FailAt(ledger.KindEventLedgerMismatch, -1)
	}

	prev := ledger.GenesisHash
	for i := range entries {
		if kind, ok := ledger.CheckEntry(i, events[i], entries[i], prev); !ok {
			return ledger.FailAt(kind, i)
		}
		if entries[i].EventID != events[i].ID {
			return ledger.FailAt(ledger.KindEventIDMismatch, i)
		}
		prev = entries[i].ChainHash
	}
	return ledger.ValidResult()
}

// Bundle is the exported form an external exporter hands to an offline
// verifier: the two parallel sequences in one document.
type Bundle struct {
	Events  []ledger.Event `json:"events"`
	Entries []ledger.Entry `json:"entries"`
}

// Verify checks the bundle's chain integrity.
func (b *Bundle) Verify() ledger.Result {
	return VerifyChainFromData(b.Events, b.Entries)
}
