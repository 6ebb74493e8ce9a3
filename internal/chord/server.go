package chord

import (
	"context"

	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chordpb"
)

// Service implements the ChordService RPC surface. Routing for the raw
// key-value operations has already happened on the caller's side, so
// Get/Put/Delete go straight to the local store.
type Service struct {
	chordpb.UnimplementedChordServiceServer

	node  *Node
	repl  *Replicator
	timer *Timer
	lgr   *zap.Logger
}

// NewService binds the RPC surface to a node and its collaborators.
func NewService(n *Node, repl *Replicator, timer *Timer, lgr *zap.Logger) *Service {
	return &Service{node: n, repl: repl, timer: timer, lgr: lgr.Named("chord.service")}
}

// FindSuccessor resolves the successor of the requested id. Lookup
// failures degrade to this node's own successor rather than erroring, so
// callers always get a routable answer.
func (s *Service) FindSuccessor(_ context.Context, req *chordpb.ID) (*chordpb.NodeInfo, error) {
	return s.node.FindSuccessor(req.GetId()).proto(), nil
}

// GetPredecessor returns the current predecessor, or this node itself when
// none is known.
func (s *Service) GetPredecessor(_ context.Context, _ *chordpb.Empty) (*chordpb.NodeInfo, error) {
	if pred, ok := s.node.Predecessor(); ok {
		return pred.proto(), nil
	}
	return s.node.Self().proto(), nil
}

// UpdatePredecessor offers a predecessor candidate. Adoption triggers the
// asynchronous handoff to the new predecessor.
func (s *Service) UpdatePredecessor(_ context.Context, req *chordpb.NodeInfo) (*chordpb.Empty, error) {
	s.node.UpdatePredecessor(infoFromProto(req))
	return &chordpb.Empty{}, nil
}

// Ping is the liveness probe.
func (s *Service) Ping(_ context.Context, _ *chordpb.Empty) (*chordpb.Empty, error) {
	return &chordpb.Empty{}, nil
}

// Get reads a key from the local store. Absent keys return empty bytes.
func (s *Service) Get(_ context.Context, req *chordpb.Key) (*chordpb.Value, error) {
	value, _ := s.node.Store().Get(req.GetKey())
	return &chordpb.Value{Value: value}, nil
}

// Put writes a key into the local store at the synchronized clock's
// current version.
func (s *Service) Put(_ context.Context, req *chordpb.KeyValue) (*chordpb.Empty, error) {
	s.node.Store().Put(req.GetKey(), req.GetValue(), 0)
	return &chordpb.Empty{}, nil
}

// Delete tombstones a key in the local store at the synchronized clock's
// current version.
func (s *Service) Delete(_ context.Context, req *chordpb.Key) (*chordpb.Empty, error) {
	s.node.Store().Delete(req.GetKey(), 0)
	return &chordpb.Empty{}, nil
}

// GetAllKeys dumps the store's wire view, meta entries included, for
// anti-entropy pulls.
func (s *Service) GetAllKeys(_ context.Context, _ *chordpb.Empty) (*chordpb.KeyValueList, error) {
	items := s.node.Store().Items()
	out := &chordpb.KeyValueList{Items: make([]*chordpb.KeyValue, 0, len(items))}
	for k, v := range items {
		out.Items = append(out.Items, &chordpb.KeyValue{Key: k, Value: v})
	}
	return out, nil
}

// SetPartition merges a foreign partition into local state with the
// last-writer-wins rule.
func (s *Service) SetPartition(_ context.Context, req *chordpb.Partition) (*chordpb.Ack, error) {
	ok := s.repl.SetPartition(req.GetValues(), req.GetVersions(), req.GetRemoved())
	return &chordpb.Ack{Ok: ok}, nil
}

// ResolveData merges the caller's view against local state and returns
// what the caller should keep.
func (s *Service) ResolveData(_ context.Context, req *chordpb.Partition) (*chordpb.PartitionResult, error) {
	values, versions, removed := s.repl.ResolveData(req.GetValues(), req.GetVersions(), req.GetRemoved())
	return &chordpb.PartitionResult{
		Ok: true,
		Partition: &chordpb.Partition{
			Values:   values,
			Versions: versions,
			Removed:  removed,
		},
	}, nil
}

// GetTime returns this node's best-known synchronized wall clock.
func (s *Service) GetTime(_ context.Context, _ *chordpb.Empty) (*chordpb.TimeStamp, error) {
	return &chordpb.TimeStamp{Timestamp: s.timer.NowString()}, nil
}
