package scoring

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Accessor projects the two strings the file tiers need out of an
// arbitrary item type. Both projections must be pure: the same item
// always yields the same basename and path.
type Accessor[T any] interface {
	Basename(T) string
	Path(T) string
}

// FileScore is the tiered score for one file-shaped item. The zero
// value is the sentinel. BasenameMatch/PathMatch hold highlight ranges
// for the tier that produced the score; only the identity tier fills
// both.
type FileScore struct {
	Score         int
	BasenameMatch []Range
	PathMatch     []Range
}

// Tier constants. Relative magnitude is load-bearing: identity beats
// prefix, prefix beats any offset basename score, and the offset keeps
// every basename subsequence match above every raw path score.
const (
	pathIdentityScore   = 1 << 18
	basenamePrefixScore = 1 << 17
	basenameScoreOffset = 1 << 16
)

// Negative array lengths break the build if the tier constants are ever
// reordered.
var (
	_ [pathIdentityScore - basenamePrefixScore - 1]struct{}
	_ [basenamePrefixScore - basenameScoreOffset - 1]struct{}
)

// ScoreFile ranks one item against query through four tiers, tried in
// strict order: full-path identity, basename prefix, basename
// subsequence, path subsequence. The zero FileScore means no tier
// matched. cache may be nil.
func ScoreFile[T any](file T, acc Accessor[T], query string, cache *ScoreCache) FileScore {
	if acc == nil || query == "" {
		return FileScore{}
	}

	basename := acc.Basename(file)
	path := acc.Path(file)
	if basename == "" || path == "" {
		return FileScore{}
	}

	// Tier 1: the query is the path itself.
	if pathsEqual(path, query) {
		return FileScore{
			Score:         pathIdentityScore,
			BasenameMatch: []Range{{Start: 0, End: utf8.RuneCountInString(basename)}},
			PathMatch:     []Range{{Start: 0, End: utf8.RuneCountInString(path)}},
		}
	}

	// Tier 2: the basename starts with the query.
	if hasFoldPrefix(basename, query) {
		return FileScore{
			Score:         basenamePrefixScore,
			BasenameMatch: []Range{{Start: 0, End: utf8.RuneCountInString(query)}},
		}
	}

	// Tier 3: a subsequence inside the basename outranks any path match.
	if m := Score(basename, query, cache); m.Score > 0 {
		return FileScore{
			Score:         m.Score + basenameScoreOffset,
			BasenameMatch: rangesFromPositions(m.Positions),
		}
	}

	// Tier 4: a subsequence across the full path.
	if m := Score(path, query, cache); m.Score > 0 {
		return FileScore{
			Score:     m.Score,
			PathMatch: rangesFromPositions(m.Positions),
		}
	}

	return FileScore{}
}

// pathsEqual is the identity-tier comparison: separators normalized to
// slashes, case ignored.
func pathsEqual(a, b string) bool {
	return strings.EqualFold(filepath.ToSlash(a), filepath.ToSlash(b))
}

func hasFoldPrefix(s, prefix string) bool {
	sr := []rune(s)
	pr := []rune(prefix)
	if len(pr) > len(sr) {
		return false
	}
	return strings.EqualFold(string(sr[:len(pr)]), prefix)
}
