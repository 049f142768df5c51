package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/evidify-labs/auditchain/pkg/canonicaljson"
)

// GenesisHash is the well-known "no predecessor" value: 32 zero bytes in
// lowercase hex.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Chain record layout. Fixed widths remove delimiter ambiguity: no field
// can leak into a neighbor through embedded separators.
const (
	recordSeqWidth  = 4
	recordHashWidth = 32
	recordIDWidth   = 36
	recordTSWidth   = 24
	recordSize      = recordSeqWidth + recordHashWidth + recordIDWidth + recordTSWidth + recordHashWidth
)

// digestHex returns the SHA-256 of data as 64 lowercase hex characters.
func digestHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ContentHash returns the content hash of a payload: the SHA-256 of its
// canonical UTF-8 text.
func ContentHash(payload canonicaljson.Value) string {
	return digestHex([]byte(canonicaljson.Canonicalize(payload)))
}

// ChainRecordHash computes the chain hash for one entry: the SHA-256 of
// the 128-byte chain record. previousHash and contentHash must be 64 hex
// characters decoding to exactly 32 bytes; anything else is a caller
// precondition violation reported as an error before any hashing occurs.
func ChainRecordHash(seq uint64, previousHash, eventID, timestamp, contentHash string) (string, error) {
	record, err := encodeChainRecord(seq, previousHash, eventID, timestamp, contentHash)
	if err != nil {
		return "", err
	}
	return digestHex(record), nil
}

// encodeChainRecord lays out the five fields at fixed offsets:
//
//	[0,4)    seq, big-endian uint32
//	[4,36)   previousHash, raw bytes
//	[36,72)  eventID, UTF-8, null-padded or truncated
//	[72,96)  timestamp, UTF-8, null-padded or truncated
//	[96,128) contentHash, raw bytes
func encodeChainRecord(seq uint64, previousHash, eventID, timestamp, contentHash string) ([]byte, error) {
	if seq > math.MaxUint32 {
		return nil, fmt.Errorf("ledger: seq %d exceeds uint32 range", seq)
	}
	prev, err := decodeHash("previous hash", previousHash)
	if err != nil {
		return nil, err
	}
	content, err := decodeHash("content hash", contentHash)
	if err != nil {
		return nil, err
	}

	record := make([]byte, recordSize)
	off := 0
	binary.BigEndian.PutUint32(record[off:off+recordSeqWidth], uint32(seq))
	off += recordSeqWidth
	copy(record[off:off+recordHashWidth], prev)
	off += recordHashWidth
	copy(record[off:off+recordIDWidth], eventID)
	off += recordIDWidth
	copy(record[off:off+recordTSWidth], timestamp)
	off += recordTSWidth
	copy(record[off:off+recordHashWidth], content)
	return record, nil
}

func decodeHash(field, hexStr string) ([]byte, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("ledger: %s is not valid hex: %w", field, err)
	}
	if len(raw) != recordHashWidth {
		return nil, fmt.Errorf("ledger: %s decodes to %d bytes, want %d", field, len(raw), recordHashWidth)
	}
	return raw, nil
}
