package chord

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTimerNowTracksWallClockBeforeSync(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	timer := NewTimer(n, time.Second, zap.NewNop())

	now := time.Now().UnixMilli()
	got := timer.NowMillis()
	assert.InDelta(t, float64(now), float64(got), 1000)
}

func TestTimerNowStringIsFractionalSeconds(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	timer := NewTimer(n, time.Second, zap.NewNop())

	raw := timer.NowString()
	secs, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.InDelta(t, float64(time.Now().Unix()), secs, 2)
}

func TestTimerIsStoreClock(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	timer := NewTimer(n, time.Second, zap.NewNop())

	n.Store().Put("k", []byte("v"), 0)
	ver := n.Store().Version("k")
	assert.InDelta(t, float64(timer.NowMillis()), float64(ver), 2000)
}

func TestTimerPeersDistinctNonSelf(t *testing.T) {
	n := newTestNode(t, "10.0.0.1:50051")
	timer := NewTimer(n, time.Second, zap.NewNop())

	a := NodeInfo{ID: 1, Address: "10.0.0.2:50051"}
	b := NodeInfo{ID: 2, Address: "10.0.0.3:50051"}
	n.setFinger(0, a)
	n.setFinger(1, a) // duplicate entry
	n.setFinger(2, n.Self())
	n.setFinger(3, b)

	peers := timer.peers(3)
	assert.Equal(t, []NodeInfo{a, b}, peers)
}
