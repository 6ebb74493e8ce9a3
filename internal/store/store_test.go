package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	return s, dir
}

func TestPutGet(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Put("k", []byte("v"), 100)

	value, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)
	assert.Equal(t, int64(100), s.Version("k"))
	assert.True(t, s.Exists("k"))
}

func TestPutWithoutVersionUsesClock(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.SetClock(func() int64 { return 42 })
	s.Put("k", []byte("v"), 0)
	assert.Equal(t, int64(42), s.Version("k"))

	s.Delete("k2", 0)
	assert.Equal(t, int64(42), s.DeletedVersion("k2"))
}

func TestDeleteLeavesTombstone(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Put("k", []byte("v"), 100)
	s.Delete("k", 200)

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.False(t, s.Exists("k"))
	assert.Equal(t, int64(0), s.Version("k"))
	assert.Equal(t, int64(200), s.DeletedVersion("k"))

	// The tombstone shows up in the deleted view, not the live one.
	assert.Empty(t, s.BaseItems())
	assert.Equal(t, map[string]int64{"k": 200}, s.DeletedItems())
}

func TestPutClearsTombstone(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Delete("k", 100)
	s.Put("k", []byte("v"), 200)

	_, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, int64(0), s.DeletedVersion("k"))
}

func TestMetaKeySurface(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Put("k", []byte("v"), 100)

	// Versions read through the meta keys as decimal bytes.
	raw, ok := s.Get(MetaVerKey("k"))
	require.True(t, ok)
	assert.Equal(t, []byte("100"), raw)
	_, ok = s.Get(MetaDelKey("k"))
	assert.False(t, ok)

	// A put to a meta key rewrites the version field.
	s.Put(MetaVerKey("k"), []byte("150"), 0)
	assert.Equal(t, int64(150), s.Version("k"))

	// A put to the tombstone meta key records a delete version...
	s.Put(MetaDelKey("k"), []byte("120"), 0)
	assert.Equal(t, int64(120), s.DeletedVersion("k"))

	// ...and deleting the meta key retracts it.
	s.Delete(MetaDelKey("k"), 0)
	assert.Equal(t, int64(0), s.DeletedVersion("k"))
}

func TestItemsWireView(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Put("live", []byte("v"), 100)
	s.Delete("dead", 200)

	items := s.Items()
	assert.Equal(t, []byte("v"), items["live"])
	assert.Equal(t, []byte("100"), items[MetaVerKey("live")])
	assert.Equal(t, []byte("200"), items[MetaDelKey("dead")])
	_, hasDeadValue := items["dead"]
	assert.False(t, hasDeadValue)
}

func TestPurge(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Put("k", []byte("v"), 100)
	s.Delete("k", 200)
	s.Purge("k")

	assert.Equal(t, int64(0), s.Version("k"))
	assert.Equal(t, int64(0), s.DeletedVersion("k"))
	assert.Empty(t, s.Items())
}

func TestWALReplayAfterReopen(t *testing.T) {
	s, dir := newTestStore(t)
	s.Put("a", []byte("1"), 100)
	s.Put("b", []byte("2"), 200)
	s.Delete("a", 300)
	// No snapshot: close the WAL only, leaving replay to do all the work.
	require.NoError(t, s.wal.close())

	s2, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	_, ok := s2.Get("a")
	assert.False(t, ok)
	assert.Equal(t, int64(300), s2.DeletedVersion("a"))

	value, ok := s2.Get("b")
	require.True(t, ok)
	assert.Equal(t, []byte("2"), value)
	assert.Equal(t, int64(200), s2.Version("b"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, dir := newTestStore(t)
	s.Put("k", []byte("v"), 100)
	s.Delete("gone", 50)
	require.NoError(t, s.Close())

	s2, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	value, ok := s2.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)
	assert.Equal(t, int64(100), s2.Version("k"))
	assert.Equal(t, int64(50), s2.DeletedVersion("gone"))
}

func TestSnapshotDocumentShape(t *testing.T) {
	s, dir := newTestStore(t)
	s.Put("k", []byte("v"), 100)
	require.NoError(t, s.Snapshot())
	s.Close()

	raw, err := os.ReadFile(filepath.Join(dir, "snapshot.json"))
	require.NoError(t, err)

	var doc struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc.Data, "k")
	assert.Contains(t, doc.Data, MetaVerKey("k"))
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshot.json"), []byte("{not json"), 0644))

	s, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	assert.Empty(t, s.Items())
}

func TestCorruptWALEntriesSkipped(t *testing.T) {
	dir := t.TempDir()
	wal := []byte(`{"op":"PUT","key":"good","value":"dg==","version":7}` + "\n" +
		"garbage line\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wal.log"), wal, 0644))

	s, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	value, ok := s.Get("good")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)
	assert.Equal(t, int64(7), s.Version("good"))
}

func TestMetaHelpers(t *testing.T) {
	assert.Equal(t, "__meta_ver__k", MetaVerKey("k"))
	assert.Equal(t, "__meta_del__k", MetaDelKey("k"))
	assert.True(t, IsMetaKey(MetaVerKey("k")))
	assert.True(t, IsMetaKey(MetaDelKey("k")))
	assert.False(t, IsMetaKey("k"))
	assert.Equal(t, "k", BaseKey(MetaVerKey("k")))
	assert.Equal(t, "k", BaseKey(MetaDelKey("k")))
	assert.Equal(t, "k", BaseKey("k"))

	// Meta of meta collapses to the base key.
	assert.Equal(t, "__meta_ver__k", MetaVerKey(MetaVerKey("k")))
}
