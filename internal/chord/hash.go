package chord

import (
	"crypto/sha1"
	"encoding/binary"
)

// HashKey maps a key (or a node address) onto the ring: SHA1(key) mod 2^m.
// The low m bits of the 160-bit digest are the digest mod 2^m, so only the
// last eight bytes matter for m <= 64.
func HashKey(key string, mBits int) uint64 {
	sum := sha1.Sum([]byte(key))
	v := binary.BigEndian.Uint64(sum[12:])
	if mBits >= 64 {
		return v
	}
	return v & (1<<uint(mBits) - 1)
}

// ringSize returns 2^m as a modulus for finger arithmetic. m == 64 wraps to
// zero, which is exactly the modulus native uint64 arithmetic applies.
func ringSize(mBits int) uint64 {
	if mBits >= 64 {
		return 0
	}
	return 1 << uint(mBits)
}

// fingerStart returns (id + 2^i) mod 2^m.
func fingerStart(id uint64, i, mBits int) uint64 {
	start := id + 1<<uint(i)
	if m := ringSize(mBits); m != 0 {
		start %= m
	}
	return start
}

// stepForward returns (id + 1) mod 2^m, the first identifier strictly after
// id — used to ask a node for its own successor.
func stepForward(id uint64, mBits int) uint64 {
	next := id + 1
	if m := ringSize(mBits); m != 0 {
		next %= m
	}
	return next
}

// between reports id ∈ (start, end) on the modular ring, both ends
// exclusive. A degenerate interval (a, a) covers the whole ring except a.
func between(id, start, end uint64) bool {
	switch {
	case start < end:
		return id > start && id < end
	case start > end:
		return id > start || id < end
	default:
		return id != start
	}
}

// betweenRightIncl reports id ∈ (start, end]. The right-inclusive bound is
// the ownership convention: the successor of id owns id itself. A
// degenerate interval covers the whole ring.
func betweenRightIncl(id, start, end uint64) bool {
	switch {
	case start < end:
		return id > start && id <= end
	case start > end:
		return id > start || id <= end
	default:
		return true
	}
}
