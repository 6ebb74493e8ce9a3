package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKeyRange(t *testing.T) {
	for _, m := range []int{1, 4, 8, 16, 32, 63} {
		id := HashKey("User/alice", m)
		assert.Less(t, id, uint64(1)<<uint(m), "m=%d", m)
	}
}

func TestHashKeyDeterministic(t *testing.T) {
	a := HashKey("Post/42", 8)
	b := HashKey("Post/42", 8)
	require.Equal(t, a, b)

	// Same key truncated to fewer bits keeps the low bits.
	full := HashKey("Post/42", 64)
	assert.Equal(t, full&0xFF, HashKey("Post/42", 8))
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name           string
		id, start, end uint64
		want           bool
	}{
		{"inside", 5, 1, 10, true},
		{"at start", 1, 1, 10, false},
		{"at end", 10, 1, 10, false},
		{"outside", 12, 1, 10, false},
		{"wrap inside high", 250, 200, 10, true},
		{"wrap inside low", 5, 200, 10, true},
		{"wrap outside", 100, 200, 10, false},
		{"degenerate other", 5, 7, 7, true},
		{"degenerate self", 7, 7, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, between(tt.id, tt.start, tt.end))
		})
	}
}

func TestBetweenRightIncl(t *testing.T) {
	tests := []struct {
		name           string
		id, start, end uint64
		want           bool
	}{
		{"inside", 5, 1, 10, true},
		{"at start", 1, 1, 10, false},
		{"at end owned", 10, 1, 10, true},
		{"outside", 12, 1, 10, false},
		{"wrap at end", 10, 200, 10, true},
		{"wrap at start", 200, 200, 10, false},
		{"degenerate full ring", 123, 7, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, betweenRightIncl(tt.id, tt.start, tt.end))
		})
	}
}

// The boundary convention: a key hashing exactly to a node's id is owned
// by that node, not by its successor.
func TestOwnershipBoundaryAtSelfID(t *testing.T) {
	const pred, self = 100, 150
	assert.True(t, betweenRightIncl(self, pred, self))
	assert.False(t, betweenRightIncl(pred, pred, self))
}

func TestFingerStartWrapsAround(t *testing.T) {
	// 2^8 ring: 250 + 2^4 wraps to 10.
	assert.Equal(t, uint64(10), fingerStart(250, 4, 8))
	assert.Equal(t, uint64(251), fingerStart(250, 0, 8))
	assert.Equal(t, uint64(0), stepForward(255, 8))
}
