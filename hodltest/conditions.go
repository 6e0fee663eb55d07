package hodltest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/hodl4me/hodl"
)

var seq uint64

// NewCondition returns a condition that is unique within the test run.
func NewCondition() hodl.Condition {
	n := atomic.AddUint64(&seq, 1)
	return hodl.NewCondition("test", "seq", SequenceID(n))
}

// NewAddress returns the address of a fresh condition.
func NewAddress() hodl.Address {
	return NewCondition().Address()
}

// SequenceID returns the 8 byte big endian encoding of n, the way every
// sequence generated key is stored.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation. The test fails if the address cannot be parsed.
func ParseAddress(t testing.TB, encodedAddress string) hodl.Address {
	t.Helper()

	addr, err := hodl.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
