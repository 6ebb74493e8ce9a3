package chord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/config"
	"github.com/ErnestoAbreu/distributed-social-network/internal/store"
)

func newTestNode(t *testing.T, address string) *Node {
	t.Helper()
	st, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	pool := NewPool(config.Default(), zap.NewNop())
	t.Cleanup(pool.Close)

	return NewNode(address, 8, st, pool, zap.NewNop())
}

func TestSingleNodeFindSuccessor(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	n.CreateRing()

	for _, id := range []uint64{0, 1, n.Self().ID, 255} {
		got := n.FindSuccessor(id)
		assert.Equal(t, n.Self(), got)
	}
}

func TestFindSuccessorWithinSuccessorInterval(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	succ := NodeInfo{ID: stepForward(n.Self().ID+20, 8), Address: "10.0.0.2:50051"}
	n.SetSuccessor(succ)

	// Any id in (self, successor] resolves locally without forwarding.
	id := stepForward(n.Self().ID, 8)
	assert.Equal(t, succ, n.FindSuccessor(id))
	assert.Equal(t, succ, n.FindSuccessor(succ.ID))
}

func TestClosestPrecedingFingerSkipsSelfAndGaps(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	self := n.Self()

	a := NodeInfo{ID: stepForward(self.ID+10, 8), Address: "10.0.0.2:50051"}
	b := NodeInfo{ID: stepForward(self.ID+40, 8), Address: "10.0.0.3:50051"}
	n.setFinger(0, a)
	n.setFinger(3, self) // self entries are never forwarded to
	n.setFinger(5, b)

	target := stepForward(self.ID+60, 8)
	assert.Equal(t, b, n.closestPrecedingFinger(target))

	// With a target before b, only a precedes it.
	target = stepForward(self.ID+20, 8)
	assert.Equal(t, a, n.closestPrecedingFinger(target))
}

func TestUpdatePredecessorAdoption(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	self := n.Self()

	adopted := make(chan NodeInfo, 4)
	n.OnPredecessorAdopted(func(p NodeInfo) { adopted <- p })

	back := func(d uint64) uint64 { return (self.ID + 256 - d) % 256 }

	// First candidate is always adopted.
	first := NodeInfo{ID: back(20), Address: "10.0.0.2:50051"}
	require.True(t, n.UpdatePredecessor(first))
	pred, ok := n.Predecessor()
	require.True(t, ok)
	assert.Equal(t, first, pred)

	select {
	case got := <-adopted:
		assert.Equal(t, first, got)
	case <-time.After(time.Second):
		t.Fatal("handoff hook did not fire")
	}

	// A candidate between the predecessor and us replaces it.
	closer := NodeInfo{ID: back(5), Address: "10.0.0.3:50051"}
	require.True(t, n.UpdatePredecessor(closer))

	// A candidate behind the current predecessor is rejected.
	behind := NodeInfo{ID: back(40), Address: "10.0.0.4:50051"}
	assert.False(t, n.UpdatePredecessor(behind))
	pred, _ = n.Predecessor()
	assert.Equal(t, closer, pred)

	// Self is never a predecessor.
	assert.False(t, n.UpdatePredecessor(self))
}

func TestAloneAndCreateRing(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	assert.True(t, n.Alone())

	n.CreateRing()
	assert.True(t, n.Alone())
	assert.Equal(t, n.Self(), n.Successor())
	_, ok := n.Predecessor()
	assert.False(t, ok)

	n.SetSuccessor(NodeInfo{ID: 1, Address: "10.0.0.2:50051"})
	assert.False(t, n.Alone())
}

func TestClearPredecessor(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	n.UpdatePredecessor(NodeInfo{ID: n.Self().ID - 1, Address: "10.0.0.2:50051"})
	n.ClearPredecessor()
	_, ok := n.Predecessor()
	assert.False(t, ok)
}
