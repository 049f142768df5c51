package ledger

import "fmt"

// Chain is an append-only sequence of (event, entry) pairs. It grows only
// through AddEvent; entries are immutable once created, and the only way
// to discard history is to discard the whole instance.
//
// Chain does no locking. Reads may run concurrently with each other, but
// callers must serialize AddEvent against everything else; the intended
// discipline is one logical owner per instance.
type Chain struct {
	events  []Event
	entries []Entry
}

// New creates an empty chain.
func New() *Chain {
	return &Chain{}
}

// AddEvent appends ev and returns the derived entry. The entry's seq is
// the chain's current length; any seq the event itself carries is
// recorded but ignored for positioning. AddEvent is deliberately not
// idempotent: two calls with identical events produce two entries, since
// each call is a distinct point in time.
//
// An error means a precondition was violated (a malformed fixed-width
// field); nothing is appended on that path.
func (c *Chain) AddEvent(ev Event) (Entry, error) {
	entry := Entry{
		Seq:          uint64(len(c.entries)),
		EventID:      ev.ID,
		EventType:    ev.Type,
		Timestamp:    ev.Timestamp,
		ContentHash:  ContentHash(ev.Payload),
		PreviousHash: c.FinalHash(),
	}

	chainHash, err := ChainRecordHash(entry.Seq, entry.PreviousHash, ev.ID, ev.Timestamp, entry.ContentHash)
	if err != nil {
		return Entry{}, fmt.Errorf("append event %q: %w", ev.ID, err)
	}
	entry.ChainHash = chainHash

	c.events = append(c.events, ev)
	c.entries = append(c.entries, entry)
	return entry, nil
}

// FinalHash returns the last entry's chainHash, or GenesisHash for an
// empty chain.
func (c *Chain) FinalHash() string {
	if len(c.entries) == 0 {
		return GenesisHash
	}
	return c.entries[len(c.entries)-1].ChainHash
}

// Len returns the number of entries.
func (c *Chain) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entry sequence.
func (c *Chain) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Events returns a copy of the event sequence.
func (c *Chain) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Verify scans the chain in order and reports the first violation found,
// so the returned index is always the lowest inconsistent position. Per
// index the checks run in priority order: assigned seq, predecessor link,
// content hash, chain hash.
func (c *Chain) Verify() Result {
	prev := GenesisHash
	for i := range c.entries {
		if kind, ok := CheckEntry(i, c.events[i], c.entries[i], prev); !ok {
			return FailAt(kind, i)
		}
		prev = c.entries[i].ChainHash
	}
	return ValidResult()
}

// CheckEntry runs the four per-index integrity checks shared by Chain.Verify
// and the stateless verifier: seq, predecessor link, content hash, chain
// hash, in that priority order. prev is the expected previousHash for index
// i. It reports the first violated check's kind, or ok.
func CheckEntry(i int, ev Event, entry Entry, prev string) (Kind, bool) {
	if entry.Seq != uint64(i) {
		return KindSeqMismatch, false
	}
	if entry.PreviousHash != prev {
		return KindPrevHashMismatch, false
	}
	if ContentHash(ev.Payload) != entry.ContentHash {
		return KindContentTampered, false
	}
	// The chain record is rebuilt from the entry's own stored fields. A
	// decode failure here means the stored hex is malformed, which can
	// never match a freshly computed digest, so it reports as a broken
	// chain rather than crashing on adversarial input.
	chainHash, err := ChainRecordHash(entry.Seq, entry.PreviousHash, entry.EventID, entry.Timestamp, entry.ContentHash)
	if err != nil || chainHash != entry.ChainHash {
		return KindChainBroken, false
	}
	return "", true
}
