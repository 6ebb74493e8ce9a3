package chord

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chordpb"
	"github.com/ErnestoAbreu/distributed-social-network/internal/config"
)

// Pool caches one client connection per peer address and wraps every RPC
// of the Chord service with its per-operation deadline. Connections are
// dialed lazily; gRPC reconnects broken ones on its own, so a dead peer
// simply keeps failing calls until it comes back or is forgotten.
type Pool struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn

	creds    credentials.TransportCredentials
	timeouts config.Timeouts
	lgr      *zap.Logger
}

// NewPool builds the pool; creds may be nil for plaintext.
func NewPool(cfg *config.Config, lgr *zap.Logger) *Pool {
	return &Pool{
		conns:    make(map[string]*grpc.ClientConn),
		creds:    ClientCredentials(cfg, lgr),
		timeouts: cfg.Timeouts,
		lgr:      lgr.Named("chord.pool"),
	}
}

func (p *Pool) client(addr string) (chordpb.ChordServiceClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.conns[addr]; ok {
		return chordpb.NewChordServiceClient(conn), nil
	}
	creds := p.creds
	if creds == nil {
		creds = insecure.NewCredentials()
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, err
	}
	p.conns[addr] = conn
	return chordpb.NewChordServiceClient(conn), nil
}

// Forget drops the cached connection to addr, closing it.
func (p *Pool) Forget(addr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if conn, ok := p.conns[addr]; ok {
		_ = conn.Close()
		delete(p.conns, addr)
	}
}

// Close closes every cached connection.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for addr, conn := range p.conns {
		_ = conn.Close()
		delete(p.conns, addr)
	}
}

func (p *Pool) withTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// ─── Typed call helpers ──────────────────────────────────────────────────────

// FindSuccessor asks the node at addr for the successor of id.
func (p *Pool) FindSuccessor(addr string, id uint64) (NodeInfo, error) {
	cli, err := p.client(addr)
	if err != nil {
		return NodeInfo{}, err
	}
	ctx, cancel := p.withTimeout(p.timeouts.FindSuccessor)
	defer cancel()
	resp, err := cli.FindSuccessor(ctx, &chordpb.ID{Id: id})
	if err != nil {
		return NodeInfo{}, err
	}
	return infoFromProto(resp), nil
}

// GetPredecessor asks addr for its predecessor.
func (p *Pool) GetPredecessor(addr string) (NodeInfo, error) {
	cli, err := p.client(addr)
	if err != nil {
		return NodeInfo{}, err
	}
	ctx, cancel := p.withTimeout(p.timeouts.Stabilize)
	defer cancel()
	resp, err := cli.GetPredecessor(ctx, &chordpb.Empty{})
	if err != nil {
		return NodeInfo{}, err
	}
	return infoFromProto(resp), nil
}

// UpdatePredecessor tells addr that self may be its predecessor.
func (p *Pool) UpdatePredecessor(addr string, self NodeInfo) error {
	cli, err := p.client(addr)
	if err != nil {
		return err
	}
	ctx, cancel := p.withTimeout(p.timeouts.Stabilize)
	defer cancel()
	_, err = cli.UpdatePredecessor(ctx, self.proto())
	return err
}

// Ping reports whether the node at addr answers within the ping deadline.
func (p *Pool) Ping(addr string) bool {
	if addr == "" {
		return false
	}
	cli, err := p.client(addr)
	if err != nil {
		return false
	}
	ctx, cancel := p.withTimeout(p.timeouts.Ping)
	defer cancel()
	_, err = cli.Ping(ctx, &chordpb.Empty{})
	if err != nil {
		p.lgr.Debug("peer unreachable", zap.String("address", addr), zap.Error(err))
	}
	return err == nil
}

// Get fetches a raw key from addr's local store. Absent keys come back as
// empty bytes, not as an error.
func (p *Pool) Get(addr, key string, timeout time.Duration) ([]byte, error) {
	cli, err := p.client(addr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := p.withTimeout(timeout)
	defer cancel()
	resp, err := cli.Get(ctx, &chordpb.Key{Key: key})
	if err != nil {
		return nil, err
	}
	return resp.GetValue(), nil
}

// GetInt fetches a meta key from addr and parses it as a version number.
// Missing or unparsable values read as zero with ok=true; ok=false means
// the peer could not be reached at all.
func (p *Pool) GetInt(addr, key string, timeout time.Duration) (int64, bool) {
	raw, err := p.Get(addr, key, timeout)
	if err != nil {
		return 0, false
	}
	if len(raw) == 0 {
		return 0, true
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, true
	}
	return v, true
}

// Put writes a raw key into addr's local store.
func (p *Pool) Put(addr, key string, value []byte, timeout time.Duration) error {
	cli, err := p.client(addr)
	if err != nil {
		return err
	}
	ctx, cancel := p.withTimeout(timeout)
	defer cancel()
	_, err = cli.Put(ctx, &chordpb.KeyValue{Key: key, Value: value})
	return err
}

// Delete removes a raw key from addr's local store.
func (p *Pool) Delete(addr, key string, timeout time.Duration) error {
	cli, err := p.client(addr)
	if err != nil {
		return err
	}
	ctx, cancel := p.withTimeout(timeout)
	defer cancel()
	_, err = cli.Delete(ctx, &chordpb.Key{Key: key})
	return err
}

// GetAllKeys dumps addr's store, meta entries included.
func (p *Pool) GetAllKeys(addr string) (map[string][]byte, error) {
	cli, err := p.client(addr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := p.withTimeout(p.timeouts.Replicate)
	defer cancel()
	resp, err := cli.GetAllKeys(ctx, &chordpb.Empty{})
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(resp.GetItems()))
	for _, kv := range resp.GetItems() {
		out[kv.GetKey()] = kv.GetValue()
	}
	return out, nil
}

// SetPartition merges a partition into addr's store.
func (p *Pool) SetPartition(addr string, values map[string][]byte, versions, removed map[string]int64) (bool, error) {
	cli, err := p.client(addr)
	if err != nil {
		return false, err
	}
	ctx, cancel := p.withTimeout(p.timeouts.Replicate)
	defer cancel()
	resp, err := cli.SetPartition(ctx, &chordpb.Partition{
		Values:   values,
		Versions: versions,
		Removed:  removed,
	})
	if err != nil {
		return false, err
	}
	return resp.GetOk(), nil
}

// ResolveData sends addr our view of a partition and returns the subset we
// should keep after addr merged it with its own.
func (p *Pool) ResolveData(addr string, values map[string][]byte, versions, removed map[string]int64) (*chordpb.Partition, error) {
	cli, err := p.client(addr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := p.withTimeout(p.timeouts.Replicate)
	defer cancel()
	resp, err := cli.ResolveData(ctx, &chordpb.Partition{
		Values:   values,
		Versions: versions,
		Removed:  removed,
	})
	if err != nil {
		return nil, err
	}
	if !resp.GetOk() || resp.GetPartition() == nil {
		return nil, nil
	}
	return resp.GetPartition(), nil
}

// GetTime samples addr's synchronized clock.
func (p *Pool) GetTime(addr string) (string, error) {
	cli, err := p.client(addr)
	if err != nil {
		return "", err
	}
	ctx, cancel := p.withTimeout(p.timeouts.Ping)
	defer cancel()
	resp, err := cli.GetTime(ctx, &chordpb.Empty{})
	if err != nil {
		return "", err
	}
	return resp.GetTimestamp(), nil
}
