// Package picker implements the interactive quick-open prompt: type to
// filter, arrows to move, Enter to accept.
package picker

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/quickopen/internal/walk"
)

// Model holds the picker state between events.
type Model struct {
	candidates []walk.Candidate
	query      []rune
	results    []Result
	cursor     int
}

// NewModel ranks the initial (empty) query so every candidate is listed.
func NewModel(candidates []walk.Candidate) *Model {
	m := &Model{candidates: candidates}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	m.results = rank(m.candidates, string(m.query))
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Query returns the current query text.
func (m *Model) Query() string {
	return string(m.query)
}

// Results returns the ranked results for the current query.
func (m *Model) Results() []Result {
	return m.results
}

// AppendRune adds one rune to the query and re-ranks.
func (m *Model) AppendRune(r rune) {
	m.query = append(m.query, r)
	m.cursor = 0
	m.refresh()
}

// DeleteRune removes the last query rune and re-ranks.
func (m *Model) DeleteRune() {
	if len(m.query) == 0 {
		return
	}
	m.query = m.query[:len(m.query)-1]
	m.cursor = 0
	m.refresh()
}

// ClearQuery resets the query and re-ranks.
func (m *Model) ClearQuery() {
	if len(m.query) == 0 {
		return
	}
	m.query = m.query[:0]
	m.cursor = 0
	m.refresh()
}

// MoveCursor shifts the selection, clamped to the result list.
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the candidate under the cursor.
func (m *Model) Selected() (walk.Candidate, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return walk.Candidate{}, false
	}
	return m.results[m.cursor].Candidate, true
}

// Run drives the picker on screen until the user accepts or cancels. It
// returns the selected candidate and true on accept. The caller owns the
// screen lifecycle.
func Run(screen tcell.Screen, candidates []walk.Candidate) (walk.Candidate, bool) {
	model := NewModel(candidates)
	renderer := newRenderer(screen)
	renderer.draw(model)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen was finalized under us.
			return walk.Candidate{}, false
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return walk.Candidate{}, false
			case ev.Key() == tcell.KeyEnter:
				if selected, ok := model.Selected(); ok {
					return selected, true
				}
			case ev.Key() == tcell.KeyUp || ev.Key() == tcell.KeyCtrlP:
				model.MoveCursor(-1)
			case ev.Key() == tcell.KeyDown || ev.Key() == tcell.KeyCtrlN:
				model.MoveCursor(1)
			case ev.Key() == tcell.KeyPgUp:
				model.MoveCursor(-pageStride(screen))
			case ev.Key() == tcell.KeyPgDn:
				model.MoveCursor(pageStride(screen))
			case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
				model.DeleteRune()
			case ev.Key() == tcell.KeyCtrlU:
				model.ClearQuery()
			case ev.Key() == tcell.KeyRune:
				model.AppendRune(ev.Rune())
			}
		}
		renderer.draw(model)
	}
}

func pageStride(screen tcell.Screen) int {
	_, height := screen.Size()
	stride := height - listTop
	if stride < 1 {
		stride = 1
	}
	return stride
}
