package ports

// Cache is a process-wide key/value cache with per-entry expiration.
// Requirements for implementations: thread safety, O(1) access by key,
// a stale entry behaves as a miss and is evicted on that lookup.
type Cache interface {
	// Get returns (value, true) on a fresh hit, (nil, false) on a miss
	// or after the entry's TTL has elapsed.
	Get(key string) (any, bool)

	// Set stores value under key unconditionally, restamping its age.
	Set(key string, value any)

	// Clear drops every entry. Used for explicit cache busting and
	// test isolation.
	Clear()
}
