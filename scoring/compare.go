package scoring

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CompareFilesByScore is a total order over file-shaped items for one
// query, suitable for sort functions: negative when a sorts before b.
// Identity matches come first, then basename-prefix matches (shorter
// basename among two prefixes), then any basename match over pure path
// matches, then higher scores, then deterministic length and string
// tie-breaks.
func CompareFilesByScore[T any](a, b T, acc Accessor[T], query string, cache *ScoreCache) int {
	if acc == nil {
		return 0
	}

	scoreA := ScoreFile(a, acc, query, cache).Score
	scoreB := ScoreFile(b, acc, query, cache).Score

	if scoreA == pathIdentityScore || scoreB == pathIdentityScore {
		if scoreA != scoreB {
			if scoreA == pathIdentityScore {
				return -1
			}
			return 1
		}
	}

	basenameA := acc.Basename(a)
	basenameB := acc.Basename(b)

	if scoreA == basenamePrefixScore || scoreB == basenamePrefixScore {
		if scoreA != scoreB {
			if scoreA == basenamePrefixScore {
				return -1
			}
			return 1
		}
		if cmp := compareRuneLengths(basenameA, basenameB); cmp != 0 {
			return cmp
		}
	}

	// A basename match of any strength beats a pure path match.
	if scoreA > basenameScoreOffset || scoreB > basenameScoreOffset {
		if scoreB < basenameScoreOffset {
			return -1
		}
		if scoreA < basenameScoreOffset {
			return 1
		}
	}

	if scoreA != scoreB {
		if scoreA > scoreB {
			return -1
		}
		return 1
	}

	if cmp := compareRuneLengths(basenameA, basenameB); cmp != 0 {
		return cmp
	}

	pathA := acc.Path(a)
	pathB := acc.Path(b)
	if cmp := compareRuneLengths(pathA, pathB); cmp != 0 {
		return cmp
	}

	if cmp := compareNames(basenameA, basenameB, query); cmp != 0 {
		return cmp
	}
	return compareNames(pathA, pathB, query)
}

func compareRuneLengths(a, b string) int {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	return 0
}

// compareNames orders two equally scored strings against the query:
// query-prefixed names first (the shorter of two prefixed names wins),
// then query-suffixed names, then shorter names, then collation order.
func compareNames(a, b, query string) int {
	lowA := strings.ToLower(a)
	lowB := strings.ToLower(b)
	lowQ := strings.ToLower(query)

	prefixA := strings.HasPrefix(lowA, lowQ)
	prefixB := strings.HasPrefix(lowB, lowQ)
	if prefixA != prefixB {
		if prefixA {
			return -1
		}
		return 1
	}
	if prefixA && prefixB {
		if cmp := compareRuneLengths(lowA, lowB); cmp != 0 {
			return cmp
		}
	}

	suffixA := strings.HasSuffix(lowA, lowQ)
	suffixB := strings.HasSuffix(lowB, lowQ)
	if suffixA != suffixB {
		if suffixA {
			return -1
		}
		return 1
	}

	if cmp := compareRuneLengths(lowA, lowB); cmp != 0 {
		return cmp
	}

	return localeCompare(lowA, lowB)
}

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und)
)

// localeCompare is the final string fallback. collate.Collator keeps
// internal iterator state, so calls are serialized.
func localeCompare(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
