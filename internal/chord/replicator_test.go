package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReplicator(t *testing.T) *Replicator {
	t.Helper()
	n := newTestNode(t, "10.0.0.1:50051")
	n.CreateRing()
	return NewReplicator(n, 3, 0, zap.NewNop())
}

func TestSetPartitionNewerValueWins(t *testing.T) {
	r := newTestReplicator(t)
	r.store.Put("k", []byte("old"), 100)

	ok := r.SetPartition(
		map[string][]byte{"k": []byte("new")},
		map[string]int64{"k": 200},
		nil,
	)
	require.True(t, ok)

	value, found := r.store.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, int64(200), r.store.Version("k"))
}

func TestSetPartitionStaleValueIgnored(t *testing.T) {
	r := newTestReplicator(t)
	r.store.Put("k", []byte("current"), 200)

	r.SetPartition(
		map[string][]byte{"k": []byte("stale")},
		map[string]int64{"k": 100},
		nil,
	)

	value, _ := r.store.Get("k")
	assert.Equal(t, []byte("current"), value)
	assert.Equal(t, int64(200), r.store.Version("k"))
}

func TestSetPartitionEqualVersionKeepsLocal(t *testing.T) {
	r := newTestReplicator(t)
	r.store.Put("k", []byte("local"), 100)

	r.SetPartition(
		map[string][]byte{"k": []byte("remote")},
		map[string]int64{"k": 100},
		nil,
	)

	value, _ := r.store.Get("k")
	assert.Equal(t, []byte("local"), value)
}

func TestSetPartitionTombstoneDominance(t *testing.T) {
	r := newTestReplicator(t)

	// Delete at 20 beats a concurrent stale write at 15 regardless of the
	// order the partition is applied in.
	r.store.Put("k", []byte("A"), 10)
	r.SetPartition(
		map[string][]byte{"k": []byte("A2")},
		map[string]int64{"k": 15},
		map[string]int64{"k": 20},
	)

	_, found := r.store.Get("k")
	assert.False(t, found)
	assert.Equal(t, int64(20), r.store.DeletedVersion("k"))
}

func TestSetPartitionNewerWriteBeatsTombstone(t *testing.T) {
	r := newTestReplicator(t)
	r.store.Delete("k", 100)

	r.SetPartition(
		map[string][]byte{"k": []byte("revived")},
		map[string]int64{"k": 150},
		nil,
	)

	value, found := r.store.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("revived"), value)
}

// Anti-entropy order must not matter: merging B then C into A equals
// merging C then B.
func TestSetPartitionCommutes(t *testing.T) {
	partB := func(r *Replicator) {
		r.SetPartition(
			map[string][]byte{"x": []byte("bx"), "y": []byte("by")},
			map[string]int64{"x": 50, "y": 300},
			map[string]int64{"z": 80},
		)
	}
	partC := func(r *Replicator) {
		r.SetPartition(
			map[string][]byte{"x": []byte("cx"), "z": []byte("cz")},
			map[string]int64{"x": 70, "z": 90},
			map[string]int64{"y": 100},
		)
	}

	state := func(r *Replicator) map[string]any {
		out := map[string]any{}
		for _, k := range []string{"x", "y", "z"} {
			v, ok := r.store.Get(k)
			out[k+".val"] = string(v)
			out[k+".ok"] = ok
			out[k+".ver"] = r.store.Version(k)
			out[k+".del"] = r.store.DeletedVersion(k)
		}
		return out
	}

	r1 := newTestReplicator(t)
	r1.store.Put("x", []byte("ax"), 60)
	partB(r1)
	partC(r1)

	r2 := newTestReplicator(t)
	r2.store.Put("x", []byte("ax"), 60)
	partC(r2)
	partB(r2)

	assert.Equal(t, state(r1), state(r2))

	// And the winners are what LWW dictates.
	x, _ := r1.store.Get("x")
	assert.Equal(t, []byte("cx"), x) // write@70 beats write@60 and write@50
	y, yOK := r1.store.Get("y")
	assert.True(t, yOK) // write@300 beats delete@100
	assert.Equal(t, []byte("by"), y)
	assert.Equal(t, int64(300), r1.store.Version("y"))
	_, zOK := r1.store.Get("z")
	assert.True(t, zOK) // write@90 beats delete@80
}

func TestResolveDataReturnsWhatCallerShouldKeep(t *testing.T) {
	r := newTestReplicator(t)
	r.store.Put("newer-here", []byte("local"), 200)
	r.store.Put("older-here", []byte("local"), 50)
	r.store.Delete("deleted-here", 500)

	values, versions, removed := r.ResolveData(
		map[string][]byte{
			"newer-here": []byte("caller"),
			"older-here": []byte("caller"),
			"deleted-here": []byte("caller"),
			"unknown":    []byte("caller"),
		},
		map[string]int64{
			"newer-here": 100, "older-here": 100, "deleted-here": 100, "unknown": 100,
		},
		nil,
	)

	// Our newer copy goes back to the caller.
	assert.Equal(t, []byte("local"), values["newer-here"])
	assert.Equal(t, int64(200), versions["newer-here"])

	// The caller's newer copy is absorbed locally and not echoed.
	_, echoed := values["older-here"]
	assert.False(t, echoed)
	got, _ := r.store.Get("older-here")
	assert.Equal(t, []byte("caller"), got)

	// Our newer tombstone wins.
	assert.Equal(t, int64(500), removed["deleted-here"])

	// Unknown keys are simply absorbed.
	got, ok := r.store.Get("unknown")
	assert.True(t, ok)
	assert.Equal(t, []byte("caller"), got)
}

func TestResolveDataTombstoneAgainstIncomingDelete(t *testing.T) {
	r := newTestReplicator(t)
	r.store.Put("k", []byte("local"), 300)

	values, versions, removed := r.ResolveData(
		nil, nil,
		map[string]int64{"k": 100, "gone": 50},
	)

	// Our newer write refutes the caller's tombstone.
	assert.Equal(t, []byte("local"), values["k"])
	assert.Equal(t, int64(300), versions["k"])
	assert.Empty(t, removed)

	// The unknown tombstone is absorbed.
	assert.Equal(t, int64(50), r.store.DeletedVersion("gone"))
}

func TestSetPartitionIdempotent(t *testing.T) {
	r := newTestReplicator(t)
	apply := func() {
		r.SetPartition(
			map[string][]byte{"k": []byte("v")},
			map[string]int64{"k": 100},
			map[string]int64{"dead": 40},
		)
	}
	apply()
	apply()

	value, _ := r.store.Get("k")
	assert.Equal(t, []byte("v"), value)
	assert.Equal(t, int64(100), r.store.Version("k"))
	assert.Equal(t, int64(40), r.store.DeletedVersion("dead"))
}

func TestSuccessorListAloneIsEmpty(t *testing.T) {
	r := newTestReplicator(t)
	assert.Empty(t, r.SuccessorList(3, true))
	assert.Empty(t, r.SuccessorList(3, false))
}
