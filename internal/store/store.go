// Package store is the local key-value engine of a ring node.
//
// Every key carries up to three pieces of state: an opaque value, the
// millisecond version of its last write, and the version at which it was
// tombstoned. The tombstone is the current state iff it is at least as new
// as the last write. Replication and anti-entropy compare these versions,
// so deletes are never forgotten locally — tombstones are kept until the
// key is purged by an ownership transfer.
//
// Data lives in memory and is persisted with a write-ahead log plus a
// periodic JSON snapshot: each mutation is appended to the WAL before the
// map changes, and a snapshot compacts the log. Corrupt files on startup
// degrade to an empty store with a log entry; they never fail the node.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	value    []byte
	hasValue bool
	ver      int64
	del      int64
}

// Store is safe for concurrent use. All mutations run under one mutex that
// also covers the WAL append, so the log order matches the memory order.
type Store struct {
	mu      sync.Mutex
	data    map[string]entry
	wal     *WAL
	dataDir string
	clock   func() int64
	lgr     *zap.Logger
}

// New opens (or creates) a store in dataDir, loading the latest snapshot
// and replaying WAL entries written after it.
func New(dataDir string, lgr *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if lgr == nil {
		lgr = zap.NewNop()
	}

	s := &Store{
		data:    make(map[string]entry),
		dataDir: dataDir,
		clock:   func() int64 { return time.Now().UnixMilli() },
		lgr:     lgr.Named("store"),
	}

	s.loadSnapshot()

	wal, err := newWAL(filepath.Join(dataDir, "wal.log"))
	if err != nil {
		return nil, fmt.Errorf("open wal: %w", err)
	}
	s.wal = wal
	s.replayWAL()

	return s, nil
}

// SetClock installs the version source used when a mutation arrives without
// an explicit version. The synchronized ring clock is wired in here; until
// then local wall time is used.
func (s *Store) SetClock(clock func() int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clock != nil {
		s.clock = clock
	}
}

// ─── Public API ───────────────────────────────────────────────────────────────

// Put stores value under key at the given version (<= 0 means "now" from
// the synchronized clock) and clears any tombstone. A put to a meta key
// writes the addressed version field of the base key instead.
func (s *Store) Put(key string, value []byte, version int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version <= 0 && !IsMetaKey(key) {
		version = s.clock()
	}
	if err := s.wal.append(walEntry{Op: opPut, Key: key, Value: value, Version: version}); err != nil {
		s.lgr.Warn("wal append failed, in-memory state stays authoritative",
			zap.String("key", key), zap.Error(err))
	}
	s.applyPut(key, value, version)
}

// Get returns the current live value for key. Reads of meta keys return the
// addressed version rendered as decimal bytes, or miss when it is zero.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := BaseKey(key)
	e, ok := s.data[base]
	if !ok {
		return nil, false
	}
	switch {
	case len(key) != len(base) && key == MetaVerKey(base):
		if e.ver == 0 {
			return nil, false
		}
		return []byte(strconv.FormatInt(e.ver, 10)), true
	case len(key) != len(base) && key == MetaDelKey(base):
		if e.del == 0 {
			return nil, false
		}
		return []byte(strconv.FormatInt(e.del, 10)), true
	default:
		if !e.hasValue {
			return nil, false
		}
		return e.value, true
	}
}

// Delete tombstones key at the given version (<= 0 means "now"). Deleting a
// meta key clears the addressed version field instead — that is how a
// replica's stale tombstone is retracted after a newer value is pushed.
func (s *Store) Delete(key string, version int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version <= 0 && !IsMetaKey(key) {
		version = s.clock()
	}
	if err := s.wal.append(walEntry{Op: opDelete, Key: key, Version: version}); err != nil {
		s.lgr.Warn("wal append failed, in-memory state stays authoritative",
			zap.String("key", key), zap.Error(err))
	}
	s.applyDelete(key, version)
}

// Purge drops key entirely: value, version and tombstone. Used after a key
// has been handed off to its rightful owner.
func (s *Store) Purge(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wal.append(walEntry{Op: opPurge, Key: key}); err != nil {
		s.lgr.Warn("wal append failed, in-memory state stays authoritative",
			zap.String("key", key), zap.Error(err))
	}
	s.applyPurge(key)
}

// Exists reports whether key currently resolves to a live value.
func (s *Store) Exists(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Version returns the write version of key, zero when unknown.
func (s *Store) Version(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[BaseKey(key)].ver
}

// DeletedVersion returns the tombstone version of key, zero when not
// tombstoned.
func (s *Store) DeletedVersion(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[BaseKey(key)].del
}

// Items returns the wire view of the store: every live value plus the
// synthesized meta entries, exactly what GetAllKeys ships to peers.
func (s *Store) Items() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]byte, len(s.data)*2)
	for k, e := range s.data {
		if e.hasValue {
			out[k] = e.value
		}
		if e.ver > 0 {
			out[MetaVerKey(k)] = []byte(strconv.FormatInt(e.ver, 10))
		}
		if e.del > 0 {
			out[MetaDelKey(k)] = []byte(strconv.FormatInt(e.del, 10))
		}
	}
	return out
}

// BaseItems returns the live (key, value) pairs, meta excluded.
func (s *Store) BaseItems() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]byte, len(s.data))
	for k, e := range s.data {
		if e.hasValue {
			out[k] = e.value
		}
	}
	return out
}

// DeletedItems returns (key, tombstone version) for every tombstoned key.
func (s *Store) DeletedItems() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64)
	for k, e := range s.data {
		if e.del > 0 {
			out[k] = e.del
		}
	}
	return out
}

// ─── Mutation primitives (shared with WAL replay) ────────────────────────────

func (s *Store) applyPut(key string, value []byte, version int64) {
	base := BaseKey(key)
	e := s.data[base]
	switch {
	case len(key) != len(base) && key == MetaVerKey(base):
		e.ver = parseVersion(value)
	case len(key) != len(base) && key == MetaDelKey(base):
		e.del = parseVersion(value)
	default:
		e.value = value
		e.hasValue = true
		e.ver = version
		e.del = 0
	}
	s.data[base] = e
}

func (s *Store) applyDelete(key string, version int64) {
	base := BaseKey(key)
	e, ok := s.data[base]
	switch {
	case len(key) != len(base) && key == MetaVerKey(base):
		if ok {
			e.ver = 0
			s.data[base] = e
		}
	case len(key) != len(base) && key == MetaDelKey(base):
		if ok {
			e.del = 0
			s.data[base] = e
		}
	default:
		e.value = nil
		e.hasValue = false
		e.ver = 0
		e.del = version
		s.data[base] = e
	}
}

func (s *Store) applyPurge(key string) {
	delete(s.data, BaseKey(key))
}

func parseVersion(raw []byte) int64 {
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ─── Persistence ─────────────────────────────────────────────────────────────

type snapshotDoc struct {
	Data map[string][]byte `json:"data"`
}

// Snapshot writes the full wire view to disk and truncates the WAL.
// The write goes to a temp file first and is renamed into place, so a crash
// mid-write leaves the previous snapshot intact.
func (s *Store) Snapshot() error {
	doc := snapshotDoc{Data: s.Items()}

	path := filepath.Join(s.dataDir, "snapshot.json")
	tmp := path + ".tmp"

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	return s.wal.truncate()
}

func (s *Store) loadSnapshot() {
	path := filepath.Join(s.dataDir, "snapshot.json")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.lgr.Info("empty store")
		return
	}
	if err != nil {
		s.lgr.Warn("snapshot unreadable, starting empty", zap.Error(err))
		return
	}

	var doc snapshotDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.lgr.Warn("snapshot corrupted, starting empty", zap.Error(err))
		return
	}

	// Base entries first so meta entries land on existing records either way.
	for k, v := range doc.Data {
		if !IsMetaKey(k) {
			e := s.data[k]
			e.value = v
			e.hasValue = true
			s.data[k] = e
		}
	}
	for k, v := range doc.Data {
		base := BaseKey(k)
		e := s.data[base]
		switch {
		case k == MetaVerKey(base) && k != base:
			e.ver = parseVersion(v)
		case k == MetaDelKey(base) && k != base:
			e.del = parseVersion(v)
		default:
			continue
		}
		s.data[base] = e
	}
}

func (s *Store) replayWAL() {
	entries, skipped, err := s.wal.readAll()
	if err != nil {
		s.lgr.Warn("wal replay incomplete", zap.Error(err))
	}
	if skipped > 0 {
		s.lgr.Warn("skipped corrupt wal entries", zap.Int("count", skipped))
	}
	for _, e := range entries {
		switch e.Op {
		case opPut:
			s.applyPut(e.Key, e.Value, e.Version)
		case opDelete:
			s.applyDelete(e.Key, e.Version)
		case opPurge:
			s.applyPurge(e.Key)
		}
	}
	if len(entries) > 0 {
		s.lgr.Info("wal replayed", zap.Int("entries", len(entries)))
	}
}

// Close takes a final snapshot and closes the WAL.
func (s *Store) Close() error {
	if err := s.Snapshot(); err != nil {
		s.lgr.Warn("final snapshot failed", zap.Error(err))
	}
	return s.wal.close()
}
