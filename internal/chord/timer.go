package chord

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventTimeKey is the well-known store key holding the last synchronized
// clock reading. Unversioned writes take their version from NowMillis, the
// store's clock, not from this key.
const EventTimeKey = "__timer_local_time__"

// Timer provides Berkeley-style clock averaging across finger peers. It is
// not a clock-synchronization guarantee: keys written during large skew
// events may be superseded when clocks reconverge. It only keeps the
// last-writer-wins timestamps well-behaved across the ring.
type Timer struct {
	node     *Node
	pool     *Pool
	interval time.Duration
	lgr      *zap.Logger

	mu     sync.Mutex
	offset time.Duration // synchronized minus local
}

// NewTimer wires the timer and installs it as the store's version source.
func NewTimer(n *Node, interval time.Duration, lgr *zap.Logger) *Timer {
	t := &Timer{
		node:     n,
		pool:     n.pool,
		interval: interval,
		lgr:      lgr.Named("chord.timer"),
	}
	n.Store().SetClock(t.NowMillis)
	return t
}

// NowMillis returns the synchronized wall clock in milliseconds.
func (t *Timer) NowMillis() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Now().Add(t.offset).UnixMilli()
}

// NowString renders the synchronized clock as fractional Unix seconds, the
// wire format of GetTime.
func (t *Timer) NowString() string {
	secs := float64(t.NowMillis()) / 1000
	return strconv.FormatFloat(secs, 'f', 6, 64)
}

// Run synchronizes once per interval until the context is canceled.
func (t *Timer) Run(ctx context.Context) {
	t.lgr.Info("timer started", zap.Duration("interval", t.interval))
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.lgr.Info("timer stopped")
			return
		case <-ticker.C:
			t.syncOnce()
		}
	}
}

// syncOnce sets the local clock to the arithmetic mean of this node's
// sample and up to three finger peers' samples, then persists the reading.
func (t *Timer) syncOnce() {
	local := float64(time.Now().UnixMilli()) / 1000
	samples := []float64{local}

	for _, peer := range t.peers(3) {
		raw, err := t.pool.GetTime(peer.Address)
		if err != nil {
			t.lgr.Debug("time sample failed", zap.String("peer", peer.Address), zap.Error(err))
			continue
		}
		remote, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		samples = append(samples, remote)
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))

	t.mu.Lock()
	t.offset = time.Duration((mean - local) * float64(time.Second))
	t.mu.Unlock()

	now := t.NowMillis()
	t.node.Store().Put(EventTimeKey, []byte(strconv.FormatFloat(mean, 'f', 6, 64)), now)
	t.lgr.Debug("clock synchronized",
		zap.Int("samples", len(samples)), zap.Float64("mean", mean))
}

// peers returns up to count distinct non-self finger entries.
func (t *Timer) peers(count int) []NodeInfo {
	var out []NodeInfo
	seen := map[string]bool{}
	for _, f := range t.node.Finger() {
		if f.IsZero() || f.Address == t.node.Self().Address || seen[f.Address] {
			continue
		}
		seen[f.Address] = true
		out = append(out, f)
		if len(out) >= count {
			break
		}
	}
	return out
}
