// Package puid issues opaque identifiers that are unique within a single
// running process.
//
// # Guarantee
//
// Every call to New returns an ID that no other call in the same process has
// returned or will return. That is the whole contract: nothing is promised
// across process restarts, across machines, or after the ID leaves the
// process in any serialized form. Callers who need distributed or
// restart-surviving uniqueness should layer their own scheme on top.
//
// # Ordering
//
// IDs are totally ordered and the order coincides with issue order: if one
// call to New happens before another (same goroutine, or across goroutines
// with an established happens-before edge), the earlier call's ID compares
// less. Calls that race may land in either order; only distinctness is
// guaranteed between them.
//
// # Overflow
//
// The shared counter is 64 bits wide. Issuing a billion IDs per second,
// without pause, exhausts it after roughly 584 years of one process
// lifetime; the package treats overflow as unreachable and performs no
// runtime check. New never fails and never blocks beyond the single atomic
// add.
//
// Usage
//
//	a := puid.New()
//	b := puid.New()
//	a == b        // false
//	a.Less(b)     // true
//	m := map[puid.ID]string{a: "first"}
package puid
