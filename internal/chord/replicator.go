package chord

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/store"
)

// resolveEvery is how many push cycles pass between ownership scans.
const resolveEvery = 5

// Replicator keeps every key on the K live successors of its hash, with
// all replicas converging to the last-writer-wins resolution of their
// version/tombstone timestamps. It pushes local state to successors every
// interval, pulls the neighborhood's state once after joining, resolves
// divergent histories with a new predecessor, and periodically hands off
// keys this node no longer holds legitimately.
type Replicator struct {
	node     *Node
	store    *store.Store
	pool     *Pool
	k        int
	interval time.Duration
	lgr      *zap.Logger
}

// NewReplicator wires the replicator and registers the predecessor-handoff
// hook on the node.
func NewReplicator(n *Node, k int, interval time.Duration, lgr *zap.Logger) *Replicator {
	r := &Replicator{
		node:     n,
		store:    n.Store(),
		pool:     n.pool,
		k:        k,
		interval: interval,
		lgr:      lgr.Named("chord.replicator"),
	}
	n.OnPredecessorAdopted(r.DelegateToPredecessor)
	return r
}

// Run is the replication loop: one settling delay, an aggressive initial
// sync, then a push cycle per interval with an ownership scan every
// resolveEvery cycles. Each pass is isolated; a failing peer never stops
// the loop.
func (r *Replicator) Run(ctx context.Context) {
	r.lgr.Info("replicator started", zap.Duration("interval", r.interval))

	select {
	case <-ctx.Done():
		return
	case <-time.After(r.interval):
	}

	r.InitialSync()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	cycle := 0
	for {
		select {
		case <-ctx.Done():
			r.lgr.Info("replicator stopped")
			return
		case <-ticker.C:
			r.ReplicateData()
			cycle++
			if cycle >= resolveEvery {
				r.ResolveReplicas()
				cycle = 0
			}
		}
	}
}

// ─── Successor list ──────────────────────────────────────────────────────────

// SuccessorList walks the ring from finger[0], asking each node for the
// successor of its own id+1, and accumulates up to count distinct live,
// non-self nodes. The walk is bounded by count·M hops so a pathological
// ring cannot trap it.
func (r *Replicator) SuccessorList(count int, aliveOnly bool) []NodeInfo {
	var successors []NodeInfo
	self := r.node.Self()

	current := r.node.Successor()
	if current.IsZero() || current.Address == self.Address {
		return successors
	}

	seen := map[string]bool{}
	alive := 0
	if r.pool.Ping(current.Address) {
		alive++
		seen[current.Address] = true
		successors = append(successors, current)
	} else if !aliveOnly {
		seen[current.Address] = true
		successors = append(successors, current)
	}

	maxHops := count * r.node.MBits()
	for hop := 0; hop < maxHops && alive < count; hop++ {
		if current.IsZero() || current.Address == self.Address {
			break
		}
		next, err := r.pool.FindSuccessor(current.Address, stepForward(current.ID, r.node.MBits()))
		if err != nil {
			r.lgr.Debug("successor walk hop failed",
				zap.String("at", current.Address), zap.Error(err))
			break
		}
		if next.IsZero() || next.Address == self.Address {
			break
		}
		if !seen[next.Address] {
			seen[next.Address] = true
			if r.pool.Ping(next.Address) {
				alive++
				successors = append(successors, next)
			} else if !aliveOnly {
				successors = append(successors, next)
			}
		}
		current = next
	}
	return successors
}

// ─── Push replication ────────────────────────────────────────────────────────

// ReplicateData pushes local live keys and tombstones to the K-1 nearest
// live successors. Per-peer failures are logged and skipped.
func (r *Replicator) ReplicateData() {
	successors := r.SuccessorList(r.k-1, true)
	if len(successors) == 0 {
		return
	}

	baseItems := r.store.BaseItems()
	deletedItems := r.store.DeletedItems()
	if len(baseItems) == 0 && len(deletedItems) == 0 {
		return
	}

	r.lgr.Debug("push cycle",
		zap.Int("keys", len(baseItems)),
		zap.Int("tombstones", len(deletedItems)),
		zap.Int("successors", len(successors)))

	for _, succ := range successors {
		failures := 0
		for key := range baseItems {
			if err := r.pushValue(succ, key); err != nil {
				failures++
				r.lgr.Warn("push value failed",
					zap.String("key", key), zap.String("to", succ.Address), zap.Error(err))
			}
		}
		for key := range deletedItems {
			if err := r.pushTombstone(succ, key); err != nil {
				failures++
				r.lgr.Warn("push tombstone failed",
					zap.String("key", key), zap.String("to", succ.Address), zap.Error(err))
			}
		}
		if failures > 0 {
			r.lgr.Warn("push cycle had failures",
				zap.String("to", succ.Address), zap.Int("failures", failures))
		}
	}
}

// pushValue ships one live key to a successor when the local write is
// strictly newer than both the remote write and the remote tombstone, then
// retracts the remote tombstone.
func (r *Replicator) pushValue(n NodeInfo, key string) error {
	localVer := r.store.Version(key)
	localDel := r.store.DeletedVersion(key)
	if localDel >= localVer && localDel > 0 {
		// Locally tombstoned; the tombstone path owns this key.
		return nil
	}
	value, ok := r.store.Get(key)
	if !ok {
		return nil
	}

	t := r.pool.timeouts.Replicate
	remoteVer, verOK := r.pool.GetInt(n.Address, store.MetaVerKey(key), t)
	remoteDel, delOK := r.pool.GetInt(n.Address, store.MetaDelKey(key), t)
	if verOK && localVer <= remoteVer {
		return nil
	}
	if delOK && remoteDel >= localVer {
		return nil
	}

	if err := r.pool.Put(n.Address, key, value, t); err != nil {
		return err
	}
	if err := r.pool.Put(n.Address, store.MetaVerKey(key), []byte(strconv.FormatInt(localVer, 10)), t); err != nil {
		return err
	}
	// Best effort: the put above already cleared the tombstone remotely.
	_ = r.pool.Delete(n.Address, store.MetaDelKey(key), t)
	return nil
}

// pushTombstone ships one tombstone when it is strictly newer than the
// remote tombstone and at least as new as the remote write.
func (r *Replicator) pushTombstone(n NodeInfo, key string) error {
	localDel := r.store.DeletedVersion(key)
	if localDel <= 0 {
		return nil
	}

	t := r.pool.timeouts.Replicate
	remoteDel, delOK := r.pool.GetInt(n.Address, store.MetaDelKey(key), t)
	remoteVer, verOK := r.pool.GetInt(n.Address, store.MetaVerKey(key), t)
	if delOK && localDel <= remoteDel {
		return nil
	}
	if verOK && localDel < remoteVer {
		return nil
	}

	_ = r.pool.Delete(n.Address, key, t)
	if err := r.pool.Put(n.Address, store.MetaDelKey(key), []byte(strconv.FormatInt(localDel, 10)), t); err != nil {
		return err
	}
	_ = r.pool.Delete(n.Address, store.MetaVerKey(key), t)
	return nil
}

// ─── Ownership scan ──────────────────────────────────────────────────────────

// ResolveReplicas walks local live keys and transfers every key this node
// neither owns nor legitimately replicates to its responsible node,
// purging locally only after a fully successful transfer.
func (r *Replicator) ResolveReplicas() {
	self := r.node.Self()
	items := r.store.BaseItems()

	type transfer struct {
		key    string
		target NodeInfo
	}
	var transfers []transfer

	for key := range items {
		if store.IsMetaKey(key) {
			continue
		}
		keyHash := HashKey(key, r.node.MBits())
		responsible := r.node.FindSuccessor(keyHash)
		if responsible.IsZero() || responsible.Address == self.Address {
			continue
		}
		if r.withinReplicaSet(responsible) {
			continue
		}
		transfers = append(transfers, transfer{key: key, target: responsible})
	}

	for _, tr := range transfers {
		if err := r.transferKey(tr.key, tr.target); err != nil {
			r.lgr.Warn("key transfer failed, keeping local copy",
				zap.String("key", tr.key), zap.String("to", tr.target.Address), zap.Error(err))
			continue
		}
		r.store.Purge(tr.key)
		r.lgr.Info("transferred key",
			zap.String("key", tr.key), zap.String("to", tr.target.Address))
	}
}

// withinReplicaSet reports whether this node is among the K-1 successors
// of the responsible node, i.e. a legitimate replica holder.
func (r *Replicator) withinReplicaSet(responsible NodeInfo) bool {
	self := r.node.Self()
	current := responsible
	for i := 0; i < r.k-1; i++ {
		next, err := r.pool.FindSuccessor(responsible.Address, stepForward(current.ID, r.node.MBits()))
		if err != nil {
			r.lgr.Debug("replica-set probe failed",
				zap.String("via", responsible.Address), zap.Error(err))
			return false
		}
		if next.Address == self.Address {
			return true
		}
		if next.IsZero() || next.Address == responsible.Address {
			return false
		}
		current = next
	}
	return false
}

func (r *Replicator) transferKey(key string, target NodeInfo) error {
	value, ok := r.store.Get(key)
	if !ok {
		return nil
	}
	t := r.pool.timeouts.Replicate
	if err := r.pool.Put(target.Address, key, value, t); err != nil {
		return err
	}
	if ver := r.store.Version(key); ver > 0 {
		if err := r.pool.Put(target.Address, store.MetaVerKey(key), []byte(strconv.FormatInt(ver, 10)), t); err != nil {
			return err
		}
	}
	if del := r.store.DeletedVersion(key); del > 0 {
		if err := r.pool.Put(target.Address, store.MetaDelKey(key), []byte(strconv.FormatInt(del, 10)), t); err != nil {
			return err
		}
	}
	return nil
}

// ─── Partition merge (server-side logic) ─────────────────────────────────────

// SetPartition merges a foreign partition into the local store with
// last-writer-wins semantics: a tombstone wins iff its version is at least
// the write version; ties keep the local state.
func (r *Replicator) SetPartition(values map[string][]byte, versions, removed map[string]int64) bool {
	// Deletes first, so a tombstone and a stale value for the same key in
	// one partition resolve the same way regardless of map order.
	for key, incDel := range removed {
		localVer := r.store.Version(key)
		localDel := r.store.DeletedVersion(key)
		if incDel > localDel && incDel >= localVer {
			r.store.Delete(key, incDel)
		}
	}
	for key, val := range values {
		incVer := versions[key]
		localVer := r.store.Version(key)
		localDel := r.store.DeletedVersion(key)
		if incVer > localVer && localDel < incVer {
			r.store.Put(key, val, incVer)
		}
	}
	return true
}

// ResolveData merges the caller's view against local state and returns
// what the caller should keep: for every key either our newer state (sent
// back) or their newer state (absorbed locally and omitted from the
// reply). Used by a successor to delegate to its new predecessor.
func (r *Replicator) ResolveData(values map[string][]byte, versions, removed map[string]int64) (map[string][]byte, map[string]int64, map[string]int64) {
	resValues := make(map[string][]byte)
	resVersions := make(map[string]int64)
	resRemoved := make(map[string]int64)

	for key, incomingVal := range values {
		incVer := versions[key]
		localVer := r.store.Version(key)
		localDel := r.store.DeletedVersion(key)

		// Local tombstone beats the incoming value unless the value is at
		// least as new.
		if localDel >= localVer && localDel > 0 {
			if localDel > incVer {
				resRemoved[key] = localDel
			} else {
				r.store.Put(key, incomingVal, incVer)
			}
			continue
		}

		if localVer > incVer {
			if localVal, ok := r.store.Get(key); ok {
				resValues[key] = localVal
				resVersions[key] = localVer
			}
		} else {
			r.store.Put(key, incomingVal, incVer)
		}
	}

	for key, incDel := range removed {
		localVer := r.store.Version(key)
		localDel := r.store.DeletedVersion(key)

		if localDel > incDel {
			resRemoved[key] = localDel
			continue
		}
		if localVer > incDel {
			if localVal, ok := r.store.Get(key); ok {
				resValues[key] = localVal
				resVersions[key] = localVer
			}
			continue
		}
		r.store.Delete(key, incDel)
	}

	return resValues, resVersions, resRemoved
}

// ─── Handoff and sync ────────────────────────────────────────────────────────

// DelegateToPredecessor resolves divergent histories with a newly adopted
// predecessor: it sends our whole snapshot, the predecessor merges and
// returns what we should keep, and we apply that. Keys now owned by the
// predecessor migrate backwards; the ownership scan purges our leftover
// copies later.
func (r *Replicator) DelegateToPredecessor(pred NodeInfo) {
	if pred.IsZero() || pred.Address == r.node.Self().Address {
		return
	}

	values := r.store.BaseItems()
	removed := r.store.DeletedItems()
	versions := make(map[string]int64, len(values))
	for key := range values {
		versions[key] = r.store.Version(key)
	}

	part, err := r.pool.ResolveData(pred.Address, values, versions, removed)
	if err != nil {
		r.lgr.Warn("handoff to predecessor failed",
			zap.String("predecessor", pred.Address), zap.Error(err))
		return
	}
	if part == nil {
		return
	}
	r.SetPartition(part.GetValues(), part.GetVersions(), part.GetRemoved())
	r.lgr.Info("handoff reconciled with predecessor",
		zap.String("predecessor", pred.Address),
		zap.Int("kept_values", len(part.GetValues())),
		zap.Int("kept_tombstones", len(part.GetRemoved())))
}

// ReplicateAllData pushes the whole local dataset to one node via
// SetPartition. Used when leaving the ring so the successor inherits
// everything immediately instead of waiting for anti-entropy.
func (r *Replicator) ReplicateAllData(n NodeInfo) {
	if n.IsZero() || n.Address == r.node.Self().Address {
		return
	}
	values := r.store.BaseItems()
	removed := r.store.DeletedItems()
	versions := make(map[string]int64, len(values))
	for key := range values {
		versions[key] = r.store.Version(key)
	}
	ok, err := r.pool.SetPartition(n.Address, values, versions, removed)
	if err != nil || !ok {
		r.lgr.Warn("full replication push failed",
			zap.String("to", n.Address), zap.Error(err))
	}
}

// InitialSync pulls the neighborhood's data after a join or topology loss:
// it unions GetAllKeys from the live successors, the predecessor, and the
// first two successors' predecessors, keeps the newest version of every
// key, filters to the keys this node may hold, and merges the rest in.
func (r *Replicator) InitialSync() {
	self := r.node.Self()
	peers := map[string]bool{}

	successors := r.SuccessorList(r.k, true)
	for _, s := range successors {
		peers[s.Address] = true
	}
	if pred, ok := r.node.Predecessor(); ok && pred.Address != self.Address {
		peers[pred.Address] = true
	}
	for i, s := range successors {
		if i >= 2 {
			break
		}
		pred, err := r.pool.GetPredecessor(s.Address)
		if err == nil && !pred.IsZero() && pred.Address != self.Address && pred.Address != s.Address {
			peers[pred.Address] = true
		}
	}

	if len(peers) == 0 {
		r.lgr.Debug("initial sync: no peers to fetch from")
		return
	}
	r.lgr.Info("initial sync", zap.Int("peers", len(peers)))

	allValues := make(map[string][]byte)
	allVersions := make(map[string]int64)
	allRemoved := make(map[string]int64)

	for addr := range peers {
		payload, err := r.pool.GetAllKeys(addr)
		if err != nil {
			r.lgr.Warn("initial sync fetch failed", zap.String("from", addr), zap.Error(err))
			continue
		}
		mergePayload(payload, allValues, allVersions, allRemoved)
	}

	filteredValues := make(map[string][]byte)
	filteredVersions := make(map[string]int64)
	filteredRemoved := make(map[string]int64)

	for key, val := range allValues {
		if !r.mayHold(key) {
			continue
		}
		filteredValues[key] = val
		if v, ok := allVersions[key]; ok {
			filteredVersions[key] = v
		}
	}
	for key, del := range allRemoved {
		responsible := r.node.FindSuccessor(HashKey(key, r.node.MBits()))
		if responsible.Address == self.Address {
			filteredRemoved[key] = del
		}
	}

	if len(filteredValues) == 0 && len(filteredRemoved) == 0 {
		r.lgr.Info("initial sync: nothing to acquire")
		return
	}
	r.SetPartition(filteredValues, filteredVersions, filteredRemoved)
	r.lgr.Info("initial sync complete",
		zap.Int("keys", len(filteredValues)),
		zap.Int("tombstones", len(filteredRemoved)))
}

// mayHold reports whether this node is the key's authoritative holder or
// within its replica set.
func (r *Replicator) mayHold(key string) bool {
	responsible := r.node.FindSuccessor(HashKey(key, r.node.MBits()))
	if responsible.IsZero() {
		return false
	}
	if responsible.Address == r.node.Self().Address {
		return true
	}
	return r.withinReplicaSet(responsible)
}

// mergePayload folds one GetAllKeys dump into the union, keeping the
// highest version per key and preferring the value that carried it.
func mergePayload(payload map[string][]byte, values map[string][]byte, versions, removed map[string]int64) {
	for k, v := range payload {
		base := store.BaseKey(k)
		switch {
		case k == store.MetaVerKey(base) && k != base:
			if ver := parseInt(v); ver > versions[base] {
				versions[base] = ver
			}
		case k == store.MetaDelKey(base) && k != base:
			if del := parseInt(v); del > removed[base] {
				removed[base] = del
			}
		default:
			if _, seen := values[k]; !seen {
				values[k] = v
				continue
			}
			// Take this copy if its own dump carries a version at least as
			// new as anything recorded so far (its own meta entry may
			// already have been folded in).
			if ver := parseInt(payload[store.MetaVerKey(k)]); ver >= versions[k] {
				values[k] = v
			}
		}
	}
}

func parseInt(raw []byte) int64 {
	if len(raw) == 0 {
		return 0
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
