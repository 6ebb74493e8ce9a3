package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	n := newTestNode(t, "10.0.0.1:50051")
	n.CreateRing()
	return NewRouter(n, zap.NewNop())
}

// Round-trip law: save then load on the same node yields the value
// synchronously, before any replication happens.
func TestRouterRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	require.NoError(t, r.Save("User/alice", []byte(`{"username":"alice"}`)))

	exists, err := r.Exists("User/alice")
	require.NoError(t, err)
	assert.True(t, exists)

	value, err := r.Load("User/alice")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"username":"alice"}`), value)
}

func TestRouterLoadMissing(t *testing.T) {
	r := newTestRouter(t)

	_, err := r.Load("User/nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := r.Exists("User/nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRouterDelete(t *testing.T) {
	r := newTestRouter(t)

	require.NoError(t, r.Save("Post/p1", []byte("content")))
	require.NoError(t, r.Delete("Post/p1"))

	_, err := r.Load("Post/p1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op, not an error.
	require.NoError(t, r.Delete("Post/p1"))
}

func TestRouterOverwrite(t *testing.T) {
	r := newTestRouter(t)

	require.NoError(t, r.Save("k", []byte("v1")))
	require.NoError(t, r.Save("k", []byte("v2")))

	value, err := r.Load("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}

// A write after a delete revives the key: a local put clears the
// tombstone.
func TestRouterSaveAfterDelete(t *testing.T) {
	r := newTestRouter(t)

	require.NoError(t, r.Save("k", []byte("v1")))
	require.NoError(t, r.Delete("k"))
	require.NoError(t, r.Save("k", []byte("v2")))

	value, err := r.Load("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}
