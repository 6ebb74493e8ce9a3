// Package chord implements the distributed storage core: a Chord ring of
// identical nodes, each combining routing state, a versioned local store,
// and the background workers that keep membership and replicas converged.
//
// Neighbors are held by (id, address) only and resolved through an RPC
// channel on demand, so the cyclic ring never turns into cyclic ownership
// and a dead pointer is just a failed RPC.
package chord

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chordpb"
	"github.com/ErnestoAbreu/distributed-social-network/internal/store"
)

// NodeInfo identifies a ring member. The zero value means "unknown".
type NodeInfo struct {
	ID      uint64
	Address string
}

// IsZero reports whether the info does not name a node.
func (n NodeInfo) IsZero() bool { return n.Address == "" }

func (n NodeInfo) proto() *chordpb.NodeInfo {
	return &chordpb.NodeInfo{Id: n.ID, Address: n.Address}
}

func infoFromProto(p *chordpb.NodeInfo) NodeInfo {
	if p == nil {
		return NodeInfo{}
	}
	return NodeInfo{ID: p.GetId(), Address: p.GetAddress()}
}

// Node is the routing core of one ring member: identity, finger table and
// predecessor under a single mutex. All RPC traffic happens outside the
// mutex — callers snapshot state under the lock, then act on the snapshot.
type Node struct {
	self  NodeInfo
	mBits int

	mu          sync.Mutex
	finger      []NodeInfo
	predecessor NodeInfo

	store *store.Store
	pool  *Pool
	lgr   *zap.Logger

	// onPredecessorAdopted runs asynchronously whenever UpdatePredecessor
	// accepts a new predecessor; the replicator installs the handoff here.
	onPredecessorAdopted func(NodeInfo)
}

// NewNode creates a node identified by SHA1(address) mod 2^mBits.
func NewNode(address string, mBits int, st *store.Store, pool *Pool, lgr *zap.Logger) *Node {
	return &Node{
		self:   NodeInfo{ID: HashKey(address, mBits), Address: address},
		mBits:  mBits,
		finger: make([]NodeInfo, mBits),
		store:  st,
		pool:   pool,
		lgr:    lgr.Named("chord.node"),
	}
}

// Self returns this node's identity.
func (n *Node) Self() NodeInfo { return n.self }

// MBits returns the ring size exponent.
func (n *Node) MBits() int { return n.mBits }

// Store exposes the local store to collaborators in this package and to
// the RPC surface.
func (n *Node) Store() *store.Store { return n.store }

// Successor returns finger[0].
func (n *Node) Successor() NodeInfo {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.finger[0]
}

// SetSuccessor installs finger[0].
func (n *Node) SetSuccessor(succ NodeInfo) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.finger[0] = succ
}

// Predecessor returns the current predecessor; ok is false when unknown.
func (n *Node) Predecessor() (NodeInfo, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.predecessor, !n.predecessor.IsZero()
}

// ClearPredecessor forgets the predecessor, e.g. after it stops answering
// pings. A later UpdatePredecessor re-seats it.
func (n *Node) ClearPredecessor() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.predecessor = NodeInfo{}
}

// Finger returns a snapshot of the finger table.
func (n *Node) Finger() []NodeInfo {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]NodeInfo, len(n.finger))
	copy(out, n.finger)
	return out
}

func (n *Node) setFinger(i int, info NodeInfo) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i >= 0 && i < len(n.finger) {
		n.finger[i] = info
	}
}

// Alone reports whether the node currently believes it is the only ring
// member (no successor, or itself as successor).
func (n *Node) Alone() bool {
	succ := n.Successor()
	return succ.IsZero() || succ.Address == n.self.Address
}

// OnPredecessorAdopted registers the hook fired (in its own goroutine)
// after a new predecessor is accepted.
func (n *Node) OnPredecessorAdopted(fn func(NodeInfo)) {
	n.onPredecessorAdopted = fn
}

// CreateRing initializes a one-node ring: the node is its own successor
// and has no predecessor.
func (n *Node) CreateRing() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.finger[0] = n.self
	n.predecessor = NodeInfo{}
	n.lgr.Info("created new ring", zap.Uint64("id", n.self.ID))
}

// Join attaches the node to the ring reachable through candidate: the
// candidate's FindSuccessor(self.id) becomes our successor. Fingers beyond
// finger[0] are left for the stabilizer to fill in.
func (n *Node) Join(candidate string) error {
	succ, err := n.pool.FindSuccessor(candidate, n.self.ID)
	if err != nil {
		return fmt.Errorf("join via %s: %w", candidate, err)
	}
	if succ.IsZero() {
		return fmt.Errorf("join via %s: empty successor", candidate)
	}
	n.SetSuccessor(succ)
	n.lgr.Info("joined ring",
		zap.String("via", candidate),
		zap.Uint64("successor", succ.ID),
		zap.String("successor_addr", succ.Address))
	return nil
}

// FindSuccessor resolves the node responsible for id using the classic
// Chord lookup. Routing failures never surface to the caller: the result
// degrades to this node's own successor.
func (n *Node) FindSuccessor(id uint64) NodeInfo {
	succ := n.Successor()
	if succ.IsZero() || succ.Address == n.self.Address {
		// Only node in the ring.
		return n.self
	}
	if betweenRightIncl(id, n.self.ID, succ.ID) {
		return succ
	}

	next := n.closestPrecedingFinger(id)
	if next.Address == n.self.Address {
		return succ
	}
	remote, err := n.pool.FindSuccessor(next.Address, id)
	if err != nil || remote.IsZero() {
		n.lgr.Debug("find successor forward failed, returning own successor",
			zap.String("via", next.Address), zap.Error(err))
		return succ
	}
	return remote
}

// closestPrecedingFinger scans the finger table backwards for the nearest
// known node strictly between us and id.
func (n *Node) closestPrecedingFinger(id uint64) NodeInfo {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.finger) - 1; i >= 0; i-- {
		f := n.finger[i]
		if f.IsZero() || f.Address == n.self.Address {
			continue
		}
		if between(f.ID, n.self.ID, id) {
			return f
		}
	}
	return n.self
}

// UpdatePredecessor adopts candidate as predecessor when none is known or
// when it falls in (predecessor, self). Returns whether it was adopted;
// adoption fires the registered handoff hook asynchronously.
func (n *Node) UpdatePredecessor(candidate NodeInfo) bool {
	if candidate.IsZero() || candidate.Address == n.self.Address {
		return false
	}

	n.mu.Lock()
	adopt := n.predecessor.IsZero() ||
		between(candidate.ID, n.predecessor.ID, n.self.ID)
	if adopt {
		n.predecessor = candidate
	}
	n.mu.Unlock()

	if adopt {
		n.lgr.Info("adopted predecessor",
			zap.Uint64("id", candidate.ID), zap.String("address", candidate.Address))
		if n.onPredecessorAdopted != nil {
			go n.onPredecessorAdopted(candidate)
		}
	}
	return adopt
}
