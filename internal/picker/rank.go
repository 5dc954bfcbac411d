package picker

import (
	"fmt"
	"os"
	"slices"

	"github.com/kk-code-lab/quickopen/internal/walk"
	"github.com/kk-code-lab/quickopen/scoring"
)

// Result pairs a candidate with its score so the renderer can highlight
// the matched ranges.
type Result struct {
	Candidate walk.Candidate
	Score     scoring.FileScore
}

type candidateAccessor struct{}

func (candidateAccessor) Basename(c walk.Candidate) string { return c.Name }
func (candidateAccessor) Path(c walk.Candidate) string     { return c.RelPath }

// rank scores every candidate once for the query, drops non-matches and
// sorts by the comparator cascade. The comparator re-derives scores but
// hits the shared cache, so the hoisted pass orders exactly as sorting
// raw candidates would. An empty query keeps walk order.
func rank(candidates []walk.Candidate, query string) []Result {
	if query == "" {
		out := make([]Result, len(candidates))
		for i, c := range candidates {
			out[i] = Result{Candidate: c}
		}
		return out
	}

	cache := scoring.NewScoreCache()
	acc := candidateAccessor{}

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		score := scoring.ScoreFile(c, acc, query, cache)
		if score.Score == 0 {
			continue
		}
		results = append(results, Result{Candidate: c, Score: score})
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return scoring.CompareFilesByScore(a.Candidate, b.Candidate, acc, query, cache)
	})

	if rankDebugEnabled() {
		for i, r := range results {
			rankLogf("query=%q rank=%d score=%d path=%s", query, i, r.Score.Score, r.Candidate.RelPath)
		}
	}

	return results
}

var rankDebugEnv = os.Getenv("QUICKOPEN_DEBUG_RANK") == "1"

func rankDebugEnabled() bool {
	return rankDebugEnv
}

func rankLogf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[rank-debug] "+format+"\n", args...)
}
