package chord

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const (
	cacheFileName = "discovered_nodes.json"
	cacheMaxAge   = time.Hour
	cacheMaxSize  = 10
)

type cacheDoc struct {
	Nodes     []string `json:"nodes"`
	Timestamp int64    `json:"timestamp"`
}

// nodeCache remembers recently seen peer addresses on disk so a restarted
// node can rejoin the ring when DNS discovery fails. Most-recent-first,
// bounded, and ignored after an hour.
type nodeCache struct {
	path string
	lgr  *zap.Logger
}

func newNodeCache(dir string, lgr *zap.Logger) *nodeCache {
	if err := os.MkdirAll(dir, 0755); err != nil {
		lgr.Warn("cache dir unavailable", zap.String("dir", dir), zap.Error(err))
	}
	return &nodeCache{path: filepath.Join(dir, cacheFileName), lgr: lgr}
}

// Load returns the cached addresses, or nil when the cache is missing,
// unreadable, or expired.
func (c *nodeCache) Load() []string {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}
	var doc cacheDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.lgr.Warn("node cache corrupted, ignoring", zap.Error(err))
		return nil
	}
	if time.Since(time.Unix(doc.Timestamp, 0)) >= cacheMaxAge {
		c.lgr.Debug("node cache expired, ignoring")
		return nil
	}
	return doc.Nodes
}

// Add records addr at the front of the cache if it is not already present.
func (c *nodeCache) Add(addr string) {
	nodes := c.Load()
	for _, n := range nodes {
		if n == addr {
			return
		}
	}
	nodes = append([]string{addr}, nodes...)
	if len(nodes) > cacheMaxSize {
		nodes = nodes[:cacheMaxSize]
	}
	c.save(nodes)
}

func (c *nodeCache) save(nodes []string) {
	doc := cacheDoc{Nodes: nodes, Timestamp: time.Now().Unix()}
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := os.WriteFile(c.path, raw, 0644); err != nil {
		c.lgr.Warn("node cache write failed", zap.Error(err))
	}
}
