package hexgrid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// fingerprinted is implemented by aggregators whose source buffers can be
// fingerprinted. Generate records the fingerprint so Cache.Stale can
// detect that the owner swapped a buffer and a full rebuild is required.
type fingerprinted interface {
	fingerprint() uint64
}

// fingerprintBuffers hashes the given buffers into a single content
// fingerprint. Each buffer is length-prefixed so that shifting bytes
// between adjacent buffers changes the digest.
func fingerprintBuffers(bufs ...[]byte) uint64 {
	h := xxhash.New()
	var lenBuf [8]byte
	for _, b := range bufs {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(b)))
		_, _ = h.Write(lenBuf[:]) // xxhash.Write never returns an error
		_, _ = h.Write(b)
	}
	return h.Sum64()
}
