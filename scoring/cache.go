package scoring

type scoreKey struct {
	target string
	query  string
}

// ScoreCache memoizes subsequence scores for one ranking pass. It is
// caller-owned and unsynchronized: use one per pass, or guard it
// externally when sharing across goroutines. Memoization never changes
// results; it only skips recomputation. The struct key avoids the
// ambiguous-boundary collisions a concatenated target+query key has.
type ScoreCache struct {
	entries map[scoreKey]Match
}

// NewScoreCache returns an empty cache.
func NewScoreCache() *ScoreCache {
	return &ScoreCache{entries: make(map[scoreKey]Match)}
}

// Len reports the number of memoized (target, query) pairs.
func (c *ScoreCache) Len() int {
	return len(c.entries)
}

func (c *ScoreCache) get(target, query string) (Match, bool) {
	m, ok := c.entries[scoreKey{target: target, query: query}]
	return m, ok
}

func (c *ScoreCache) put(target, query string, m Match) {
	c.entries[scoreKey{target: target, query: query}] = m
}
