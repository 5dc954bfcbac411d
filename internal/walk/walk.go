// Package walk gathers the candidate files the picker ranks.
package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Candidate is one selectable file produced by the walk.
type Candidate struct {
	Name    string // basename
	RelPath string // slash-separated path relative to the walk root
}

// Collect gathers up to limit regular files under root, breadth first so
// shallow files come out before deeply nested ones. Hidden (dot-prefixed)
// files and directories are skipped. Unreadable directories are skipped
// rather than failing the whole walk. A limit <= 0 means no cap.
func Collect(root string, limit int) ([]Candidate, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walk: %s is not a directory", root)
	}

	var out []Candidate
	queue := []string{""}

	for len(queue) > 0 {
		rel := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}
			if entry.IsDir() {
				queue = append(queue, childRel)
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}
			out = append(out, Candidate{Name: name, RelPath: childRel})
			if limit > 0 && len(out) >= limit {
				return out, nil
			}
		}
	}

	return out, nil
}
