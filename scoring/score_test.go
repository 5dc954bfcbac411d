package scoring

import (
	"slices"
	"testing"
)

func TestScore_NoMatch(t *testing.T) {
	tests := []struct {
		target string
		query  string
	}{
		{"", "query"},
		{"target", ""},
		{"", ""},
		{"short", "muchlongerquery"}, // query cannot be a subsequence
		{"apple", "xyz"},
		{"abc", "acb"}, // order matters: b is behind the cursor after c
		{"Hello-World", "987"},
	}

	for _, tt := range tests {
		m := Score(tt.target, tt.query, nil)
		if m.Score != 0 || len(m.Positions) != 0 {
			t.Errorf("Score(%q, %q) = %+v, want sentinel", tt.target, tt.query, m)
		}
	}
}

func TestScore_AllOrNothing(t *testing.T) {
	// "ap" alone scores well against "apple"; adding an unmatched rune
	// must zero the whole result, not just the tail.
	if m := Score("apple", "ap", nil); m.Score == 0 {
		t.Fatalf("Score(apple, ap) unexpectedly zero")
	}
	m := Score("apple", "apz", nil)
	if m.Score != 0 || len(m.Positions) != 0 {
		t.Errorf("Score(apple, apz) = %+v, want sentinel", m)
	}
}

func TestScore_BonusValues(t *testing.T) {
	tests := []struct {
		target    string
		query     string
		wantScore int
		wantPos   []int
	}{
		{"a", "a", 10, []int{0}},      // char + same case + start
		{"A", "a", 9, []int{0}},       // start bonus without case bonus
		{"ab", "ab", 17, []int{0, 1}}, // consecutive run
		{"foo_bar", "b", 9, []int{4}}, // word start after separator
		{"fooBar", "b", 2, []int{3}},  // camel-case bonus only
		{"main.go", "mgo", 26, []int{0, 5, 6}},
		{"foo/bar.go", "fbg", 28, []int{0, 4, 8}},
	}

	for _, tt := range tests {
		m := Score(tt.target, tt.query, nil)
		if m.Score != tt.wantScore {
			t.Errorf("Score(%q, %q).Score = %d, want %d", tt.target, tt.query, m.Score, tt.wantScore)
		}
		if !slices.Equal(m.Positions, tt.wantPos) {
			t.Errorf("Score(%q, %q).Positions = %v, want %v", tt.target, tt.query, m.Positions, tt.wantPos)
		}
	}
}

func TestScore_CaseBonusOrdering(t *testing.T) {
	target := "Hello-World"

	exact := Score(target, "HelLo-World", nil).Score
	folded := Score(target, "hello-world", nil).Score
	single := Score(target, "H", nil).Score

	if exact <= folded {
		t.Errorf("same-case query should outscore folded query: %d <= %d", exact, folded)
	}
	if folded <= single {
		t.Errorf("full folded query should outscore single rune: %d <= %d", folded, single)
	}
}

func TestScore_GreedyLeftmostPositions(t *testing.T) {
	tests := []struct {
		target  string
		query   string
		wantPos []int
	}{
		{"abcabc", "abc", []int{0, 1, 2}},
		{"xaxbxc", "abc", []int{1, 3, 5}},
		{"someFile123.txt", "of", []int{1, 4}},
	}

	for _, tt := range tests {
		m := Score(tt.target, tt.query, nil)
		if m.Score == 0 {
			t.Fatalf("Score(%q, %q) unexpectedly zero", tt.target, tt.query)
		}
		if !slices.Equal(m.Positions, tt.wantPos) {
			t.Errorf("Score(%q, %q).Positions = %v, want %v", tt.target, tt.query, m.Positions, tt.wantPos)
		}
		for i := 1; i < len(m.Positions); i++ {
			if m.Positions[i] <= m.Positions[i-1] {
				t.Errorf("Score(%q, %q) positions not ascending: %v", tt.target, tt.query, m.Positions)
			}
		}
	}
}

func TestScore_CaseInsensitiveMatching(t *testing.T) {
	if m := Score("README.md", "readme", nil); m.Score == 0 {
		t.Errorf("uppercase target should match lowercase query")
	}
	if m := Score("readme.md", "README", nil); m.Score == 0 {
		t.Errorf("lowercase target should match uppercase query")
	}
}
