package store

import "strings"

// Meta keys expose per-key version metadata through the ordinary key-value
// surface so replicas can read and write versions with plain Get/Put RPCs.
// "__meta_ver__k" addresses the write version of k, "__meta_del__k" its
// tombstone version.
const (
	MetaVerPrefix = "__meta_ver__"
	MetaDelPrefix = "__meta_del__"
)

// MetaVerKey returns the wire key addressing the write version of key.
func MetaVerKey(key string) string { return MetaVerPrefix + BaseKey(key) }

// MetaDelKey returns the wire key addressing the tombstone version of key.
func MetaDelKey(key string) string { return MetaDelPrefix + BaseKey(key) }

// IsMetaKey reports whether key addresses version metadata rather than data.
func IsMetaKey(key string) bool {
	return strings.HasPrefix(key, MetaVerPrefix) || strings.HasPrefix(key, MetaDelPrefix)
}

// BaseKey strips a meta prefix, if any.
func BaseKey(key string) string {
	if strings.HasPrefix(key, MetaVerPrefix) {
		return key[len(MetaVerPrefix):]
	}
	if strings.HasPrefix(key, MetaDelPrefix) {
		return key[len(MetaDelPrefix):]
	}
	return key
}
