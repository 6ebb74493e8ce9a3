package chord

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// fingerLogEvery throttles the finger-table snapshot log line.
const fingerLogEvery = 30 * time.Second

// Stabilizer restores ring invariants after membership change. It is the
// only writer of the finger table besides join: each pass repairs
// finger[0], notifies the successor, checks the predecessor, and refreshes
// finger entries.
type Stabilizer struct {
	node     *Node
	pool     *Pool
	interval time.Duration
	lgr      *zap.Logger

	lastLog    time.Time
	nextFinger int
}

// NewStabilizer wires the stabilizer for a node.
func NewStabilizer(n *Node, interval time.Duration, lgr *zap.Logger) *Stabilizer {
	return &Stabilizer{
		node:     n,
		pool:     n.pool,
		interval: interval,
		lgr:      lgr.Named("chord.stabilizer"),
	}
}

// Run executes one pass per interval until the context is canceled.
func (s *Stabilizer) Run(ctx context.Context) {
	s.lgr.Info("stabilizer started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.lgr.Info("stabilizer stopped")
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *Stabilizer) runOnce() {
	s.checkPredecessor()

	self := s.node.Self()
	succ := s.node.Successor()
	if succ.IsZero() || succ.Address == self.Address {
		return
	}

	changed := false

	// Successor dead? Promote the first live finger, or fall back to self.
	if !s.pool.Ping(succ.Address) {
		s.lgr.Warn("successor unreachable, promoting replacement",
			zap.String("successor", succ.Address))
		succ = s.nextAliveFinger()
		s.node.SetSuccessor(succ)
		changed = true
		if succ.Address == self.Address {
			// Isolated; discovery will try to rejoin.
			return
		}
	}

	// Adopt the successor's predecessor when it sits between us and the
	// successor and is alive.
	pred, err := s.pool.GetPredecessor(succ.Address)
	if err != nil {
		s.lgr.Warn("get predecessor failed",
			zap.String("successor", succ.Address), zap.Error(err))
		return
	}
	if !pred.IsZero() && pred.Address != self.Address &&
		between(pred.ID, self.ID, succ.ID) && s.pool.Ping(pred.Address) {
		s.node.SetSuccessor(pred)
		succ = pred
		changed = true
	}

	if err := s.pool.UpdatePredecessor(succ.Address, self); err != nil {
		s.lgr.Warn("notify successor failed",
			zap.String("successor", succ.Address), zap.Error(err))
		return
	}

	if changed {
		s.fixAllFingers()
	} else {
		s.fixNextFinger()
	}

	if time.Since(s.lastLog) >= fingerLogEvery {
		s.logFingerTable()
		s.lastLog = time.Now()
	}
}

// checkPredecessor clears the predecessor when it stops answering pings,
// so a later UpdatePredecessor can re-seat it.
func (s *Stabilizer) checkPredecessor() {
	pred, ok := s.node.Predecessor()
	if !ok || pred.Address == s.node.Self().Address {
		return
	}
	if !s.pool.Ping(pred.Address) {
		s.lgr.Info("predecessor unreachable, clearing",
			zap.String("predecessor", pred.Address))
		s.node.ClearPredecessor()
	}
}

// nextAliveFinger promotes the first live non-self finger entry, or self
// when the whole table is dead.
func (s *Stabilizer) nextAliveFinger() NodeInfo {
	for _, f := range s.node.Finger() {
		if f.IsZero() || f.Address == s.node.Self().Address {
			continue
		}
		if s.pool.Ping(f.Address) {
			return f
		}
	}
	return s.node.Self()
}

// fixAllFingers recomputes the whole finger table, tolerating per-entry
// failures. Used after topology changed.
func (s *Stabilizer) fixAllFingers() {
	self := s.node.Self()
	for i := 0; i < s.node.MBits(); i++ {
		start := fingerStart(self.ID, i, s.node.MBits())
		s.node.setFinger(i, s.node.FindSuccessor(start))
	}
}

// fixNextFinger refreshes one finger per quiet pass, round-robin.
func (s *Stabilizer) fixNextFinger() {
	self := s.node.Self()
	i := s.nextFinger
	s.nextFinger = (s.nextFinger + 1) % s.node.MBits()

	start := fingerStart(self.ID, i, s.node.MBits())
	if f := s.node.FindSuccessor(start); !f.IsZero() {
		s.node.setFinger(i, f)
	}
}

func (s *Stabilizer) logFingerTable() {
	fingers := s.node.Finger()
	entries := make([]string, len(fingers))
	for i, f := range fingers {
		if f.IsZero() {
			entries[i] = "-"
		} else {
			entries[i] = f.Address
		}
	}
	pred, _ := s.node.Predecessor()
	s.lgr.Info("finger table",
		zap.Uint64("self", s.node.Self().ID),
		zap.Strings("fingers", entries),
		zap.String("predecessor", pred.Address))
}
