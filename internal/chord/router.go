package chord

import (
	"errors"

	"go.uber.org/zap"
)

// Error kinds surfaced by the Router. The application layer maps these to
// its own status codes; InvalidArgument is produced by the application
// services themselves, never by the core.
var (
	ErrNotFound        = errors.New("key not found")
	ErrInternal        = errors.New("internal error")
	ErrUnavailable     = errors.New("responsible node unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Router is the façade the application services call. Every operation
// hashes the key, resolves the responsible node, and either hits the local
// store or issues the matching RPC. On remote failure writes fall back to
// the local store and reads fall back to a local replica — availability
// over strict consistency, with anti-entropy repairing the divergence.
type Router struct {
	node *Node
	pool *Pool
	lgr  *zap.Logger
}

// NewRouter builds the router for a node.
func NewRouter(n *Node, lgr *zap.Logger) *Router {
	return &Router{node: n, pool: n.pool, lgr: lgr.Named("chord.router")}
}

func (r *Router) responsible(key string) NodeInfo {
	resp := r.node.FindSuccessor(HashKey(key, r.node.MBits()))
	if resp.IsZero() {
		return r.node.Self()
	}
	return resp
}

// Exists reports whether key currently resolves to a live value on its
// responsible node (the local store when that node is this one).
func (r *Router) Exists(key string) (bool, error) {
	resp := r.responsible(key)
	if resp.Address == r.node.Self().Address {
		return r.node.Store().Exists(key), nil
	}

	value, err := r.pool.Get(resp.Address, key, r.pool.timeouts.Exists)
	if err != nil {
		r.lgr.Warn("exists probe failed",
			zap.String("key", key), zap.String("node", resp.Address), zap.Error(err))
		return false, ErrInternal
	}
	return len(value) > 0, nil
}

// Load fetches the value stored under key. When the responsible node is
// unreachable it falls back to a local replica copy if one exists.
func (r *Router) Load(key string) ([]byte, error) {
	resp := r.responsible(key)
	if resp.Address == r.node.Self().Address {
		value, ok := r.node.Store().Get(key)
		if !ok {
			return nil, ErrNotFound
		}
		return value, nil
	}

	value, err := r.pool.Get(resp.Address, key, r.pool.timeouts.Load)
	if err == nil {
		if len(value) == 0 {
			return nil, ErrNotFound
		}
		return value, nil
	}

	r.lgr.Warn("remote load failed, trying local replica",
		zap.String("key", key), zap.String("node", resp.Address), zap.Error(err))
	if local, ok := r.node.Store().Get(key); ok {
		return local, nil
	}
	return nil, ErrUnavailable
}

// Save writes value under key. When the responsible node is unreachable
// the write lands locally and anti-entropy propagates it later.
func (r *Router) Save(key string, value []byte) error {
	resp := r.responsible(key)
	if resp.Address == r.node.Self().Address {
		r.node.Store().Put(key, value, 0)
		return nil
	}

	if err := r.pool.Put(resp.Address, key, value, r.pool.timeouts.Save); err != nil {
		r.lgr.Warn("remote save failed, writing locally",
			zap.String("key", key), zap.String("node", resp.Address), zap.Error(err))
		r.node.Store().Put(key, value, 0)
	}
	return nil
}

// Delete tombstones key. Same local fallback as Save.
func (r *Router) Delete(key string) error {
	resp := r.responsible(key)
	if resp.Address == r.node.Self().Address {
		r.node.Store().Delete(key, 0)
		return nil
	}

	if err := r.pool.Delete(resp.Address, key, r.pool.timeouts.Delete); err != nil {
		r.lgr.Warn("remote delete failed, deleting locally",
			zap.String("key", key), zap.String("node", resp.Address), zap.Error(err))
		r.node.Store().Delete(key, 0)
	}
	return nil
}
