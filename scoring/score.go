// Package scoring ranks file-shaped items against short typed queries.
//
// The core is a greedy subsequence scorer: every query rune must be found
// in the target left to right (case-insensitively), and each matched rune
// collects position-sensitive bonuses. On top of it sit a tiered file
// scorer and a total-order comparator for sorting picker results.
package scoring

import "unicode"

// Match is the result of one subsequence scoring call. Positions are
// ascending rune indices into the target, one per query rune. Score 0
// with no positions is the "no match" sentinel, never a valid low score.
type Match struct {
	Score     int
	Positions []int
}

// Bonus weights. Only relative sizes matter; the tier constants in
// file.go assume scorer output stays far below basenameScoreOffset.
const (
	charBonus        = 1 // every matched rune
	consecutiveBonus = 5 // matched rune directly follows the previous match
	sameCaseBonus    = 1 // exact case at the matched position
	startBonus       = 8 // match at target index 0
	wordStartBonus   = 7 // match right after a separator rune
	camelBonus       = 1 // ASCII uppercase in the middle of a word
)

// Score computes a bonus-weighted subsequence match of query against
// target. Matching is all or nothing: if any query rune cannot be found
// in order, the result is the sentinel regardless of how well a prefix
// of the query matched. cache may be nil.
func Score(target, query string, cache *ScoreCache) Match {
	if target == "" || query == "" {
		return Match{}
	}

	if cache != nil {
		if m, ok := cache.get(target, query); ok {
			return m
		}
	}

	targetRunes := []rune(target)
	queryRunes := []rune(query)
	if len(targetRunes) < len(queryRunes) {
		// The query cannot be a subsequence; not worth a cache entry.
		return Match{}
	}

	m := scoreRunes(targetRunes, queryRunes)
	if cache != nil {
		cache.put(target, query, m)
	}
	return m
}

func scoreRunes(target, query []rune) Match {
	score := 0
	positions := make([]int, 0, len(query))
	startAt := 0

	for i, q := range query {
		idx := indexRuneFold(target, q, startAt)
		if idx < 0 {
			return Match{}
		}

		score += charBonus
		if i > 0 && idx == startAt {
			score += consecutiveBonus
		}
		if target[idx] == q {
			score += sameCaseBonus
		}
		switch {
		case idx == 0:
			score += startBonus
		case isWordSeparator(target[idx-1]):
			score += wordStartBonus
		case target[idx] >= 'A' && target[idx] <= 'Z':
			score += camelBonus
		}

		positions = append(positions, idx)
		startAt = idx + 1
	}

	return Match{Score: score, Positions: positions}
}

// indexRuneFold finds the first case-insensitive occurrence of q in
// target at index from or later.
func indexRuneFold(target []rune, q rune, from int) int {
	lq := foldRune(q)
	for i := from; i < len(target); i++ {
		if foldRune(target[i]) == lq {
			return i
		}
	}
	return -1
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	if r > unicode.MaxASCII {
		return unicode.ToLower(r)
	}
	return r
}

func isWordSeparator(r rune) bool {
	switch r {
	case '-', '_', ' ', '/', '\\', '.':
		return true
	}
	return false
}
