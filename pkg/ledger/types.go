// Package ledger — append-only, hash-chained event ledgers.
//
// A Chain records producer events in arrival order. Every appended entry
// binds a SHA-256 content hash of the event's canonical payload to its
// position and predecessor through a fixed-width chain record, so any
// later mutation, reordering, or splice is detectable by Verify or by an
// offline verifier holding only the exported sequences.
//
// A Chain is exclusively owned by its creator and provides no internal
// locking: callers must confine a given instance to a single writer.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/evidify-labs/auditchain/pkg/canonicaljson"
)

// timestampLayout is the fixed 24-character event timestamp form:
// UTC date, time, millisecond fraction, and zone marker.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Event is a producer-supplied unit of record. The payload is the only
// field covered by the content hash; the id and timestamp are bound into
// the chain record.
type Event struct {
	// ID is the event's unique identifier, exactly 36 bytes of UTF-8
	// (UUID-shaped by convention).
	ID string `json:"id"`

	// Seq is the producer's own sequence number. It is informational
	// only: the chain assigns entry positions itself.
	Seq uint64 `json:"seq"`

	// Type is a short producer-defined tag for the event kind.
	Type string `json:"type"`

	// Timestamp is the fixed 24-character UTC timestamp text.
	Timestamp string `json:"timestamp"`

	// Payload is the structured content covered by the content hash.
	Payload canonicaljson.Value `json:"payload"`
}

// NewEvent builds an event of the given type with a fresh UUIDv4 id and
// the current UTC time. Seq is left zero; producers that track their own
// numbering may set it, but the chain ignores it either way.
func NewEvent(eventType string, payload canonicaljson.Value) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(timestampLayout),
		Payload:   payload,
	}
}

// Entry is the chain's derived, immutable record for one event.
type Entry struct {
	// Seq is the assigned position: zero-based, strictly increasing, no
	// gaps.
	Seq uint64 `json:"seq"`

	// EventID, EventType, and Timestamp are copied from the event.
	EventID   string `json:"eventId"`
	EventType string `json:"eventType"`
	Timestamp string `json:"timestamp"`

	// ContentHash is the SHA-256 of the canonicalized payload, lowercase
	// hex.
	ContentHash string `json:"contentHash"`

	// PreviousHash is the prior entry's ChainHash, or GenesisHash for the
	// first entry.
	PreviousHash string `json:"previousHash"`

	// ChainHash is the SHA-256 of the fixed-width chain record binding
	// this entry to its position and predecessor.
	ChainHash string `json:"chainHash"`
}
