package chord

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/config"
)

// Discoverer bootstraps ring membership. It resolves the deployment's DNS
// alias to candidate peers, keeps an on-disk cache of recent sightings as
// a fallback, and — whenever the node is isolated — joins the ring through
// the first reachable candidate, or creates a fresh one-node ring when
// there are none. Fingers beyond the successor are left to the stabilizer.
type Discoverer struct {
	node     *Node
	pool     *Pool
	repl     *Replicator
	cache    *nodeCache
	alias    string
	port     int
	interval time.Duration
	lgr      *zap.Logger
}

// NewDiscoverer wires the discoverer for a node.
func NewDiscoverer(n *Node, repl *Replicator, cfg *config.Config, lgr *zap.Logger) *Discoverer {
	lgr = lgr.Named("chord.discoverer")
	return &Discoverer{
		node:     n,
		pool:     n.pool,
		repl:     repl,
		cache:    newNodeCache(cfg.CacheDir, lgr),
		alias:    cfg.NetworkAlias,
		port:     cfg.DefaultPort,
		interval: cfg.DiscoveryInterval,
		lgr:      lgr,
	}
}

// Run performs one pass immediately, then one per interval until the
// context is canceled.
func (d *Discoverer) Run(ctx context.Context) {
	d.lgr.Info("discoverer started",
		zap.String("alias", d.alias), zap.Duration("interval", d.interval))
	d.runOnce()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.lgr.Info("discoverer stopped")
			return
		case <-ticker.C:
			d.runOnce()
		}
	}
}

func (d *Discoverer) runOnce() {
	if !d.node.Alone() {
		return
	}

	candidates := d.DiscoverNodes()
	if len(candidates) == 0 {
		if d.node.Successor().IsZero() {
			d.node.CreateRing()
		}
		return
	}

	if d.Join(candidates) {
		// Pull the neighborhood's data for the key ranges we now serve.
		go d.repl.InitialSync()
		return
	}
	if d.node.Successor().IsZero() {
		d.node.CreateRing()
	}
}

// DiscoverNodes resolves the network alias to peer addresses, records them
// in the cache, and excludes this node. When DNS fails it falls back to
// the cached addresses.
func (d *Discoverer) DiscoverNodes() []string {
	self := d.node.Self().Address

	ips, err := net.LookupHost(d.alias)
	if err != nil {
		d.lgr.Debug("DNS discovery failed, trying cache",
			zap.String("alias", d.alias), zap.Error(err))
		var cached []string
		for _, addr := range d.cache.Load() {
			if addr != self {
				cached = append(cached, addr)
			}
		}
		if len(cached) > 0 {
			d.lgr.Info("using cached peers", zap.Int("count", len(cached)))
		}
		return cached
	}

	var candidates []string
	for _, ip := range ips {
		addr := fmt.Sprintf("%s:%d", ip, d.port)
		d.cache.Add(addr)
		if addr != self {
			candidates = append(candidates, addr)
		}
	}
	if len(candidates) > 0 {
		d.lgr.Info("discovered peers", zap.Int("count", len(candidates)))
	}
	return candidates
}

// Join tries each candidate in order: ping it, then join through it.
// Returns whether any candidate worked.
func (d *Discoverer) Join(candidates []string) bool {
	for _, addr := range candidates {
		if !d.pool.Ping(addr) {
			d.lgr.Debug("join candidate unreachable", zap.String("candidate", addr))
			continue
		}
		if err := d.node.Join(addr); err != nil {
			d.lgr.Warn("join attempt failed", zap.String("candidate", addr), zap.Error(err))
			continue
		}
		return true
	}
	return false
}
