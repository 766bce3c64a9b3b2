package puid

import (
	"strconv"
	"sync/atomic"
)

// ID is an opaque process-unique identifier. IDs are plain comparable
// values: == is identity, and they can be used directly as map keys. The
// internal representation is not part of the contract and may change
// between builds.
type ID struct {
	n uint64
}

// counter is the process-wide issue state, shared by every call site. Its
// zero value is the initial state, so there is no setup step; it is only
// ever touched through the atomic add in New.
var counter atomic.Uint64

// New returns an ID that has never been returned before in this process.
// Safe for concurrent use from any number of goroutines; the atomic add is
// the sole serialization point. A fresh process issues IDs starting from
// the same initial value every time.
func New() ID {
	return ID{n: counter.Add(1) - 1}
}

// Compare returns -1, 0, or 1 ordering i against other. The order matches
// issue order wherever issue order is defined (see the package doc).
func (i ID) Compare(other ID) int {
	switch {
	case i.n < other.n:
		return -1
	case i.n > other.n:
		return 1
	}
	return 0
}

// Less reports whether i was issued before other.
func (i ID) Less(other ID) bool { return i.n < other.n }

// String returns a short debug form like "puid-42". The text is not a
// stable format and must not be parsed.
func (i ID) String() string {
	return "puid-" + strconv.FormatUint(i.n, 10)
}
