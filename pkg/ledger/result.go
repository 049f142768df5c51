package ledger

// Kind names one class of integrity violation. The values are part of the
// external interface: offline verifiers and exporters match on them.
type Kind string

const (
	// KindSeqMismatch: an entry's stored seq does not equal its index.
	KindSeqMismatch Kind = "SEQ_MISMATCH"
	// KindPrevHashMismatch: an entry's previousHash does not match its
	// predecessor's chainHash (or the genesis constant at index 0).
	KindPrevHashMismatch Kind = "PREV_HASH_MISMATCH"
	// KindContentTampered: the recomputed payload hash differs from the
	// stored contentHash.
	KindContentTampered Kind = "CONTENT_TAMPERED"
	// KindChainBroken: the recomputed chain record hash differs from the
	// stored chainHash.
	KindChainBroken Kind = "CHAIN_BROKEN"
	// KindEventLedgerMismatch: the event and entry sequences have
	// different lengths.
	KindEventLedgerMismatch Kind = "EVENT_LEDGER_MISMATCH"
	// KindEventIDMismatch: an entry's eventId does not match the event at
	// the same index.
	KindEventIDMismatch Kind = "EVENT_ID_MISMATCH"
)

// Result is the structured outcome of an integrity scan. Violations are
// reported here, never as Go errors, so a verifier can run over untrusted
// input without any crash path; scans are fail-fast, so Index is always
// the lowest failing position.
type Result struct {
	Valid bool `json:"valid"`
	// Error is empty when Valid.
	Error Kind `json:"error,omitempty"`
	// Index is the failing entry position, or -1 when no single index
	// applies (success, or a length mismatch).
	Index int `json:"index"`
}

// ValidResult returns the success outcome.
func ValidResult() Result {
	return Result{Valid: true, Index: -1}
}

// FailAt returns a failure outcome for the given kind and index. Pass -1
// when no index applies.
func FailAt(kind Kind, index int) Result {
	return Result{Valid: false, Error: kind, Index: index}
}
