package picker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/quickopen/scoring"
)

const listTop = 2 // rows taken by the prompt and the counter line

// Theme defines picker colors.
type Theme struct {
	PromptFg    tcell.Color
	CounterFg   tcell.Color
	ResultFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	HighlightFg tcell.Color
}

func defaultTheme() Theme {
	return Theme{
		PromptFg:    tcell.ColorDefault,
		CounterFg:   tcell.ColorLightSlateGray,
		ResultFg:    tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		HighlightFg: tcell.Color45,
	}
}

type renderer struct {
	screen tcell.Screen
	theme  Theme
}

func newRenderer(screen tcell.Screen) *renderer {
	return &renderer{screen: screen, theme: defaultTheme()}
}

func (r *renderer) draw(m *Model) {
	r.screen.Clear()
	width, height := r.screen.Size()

	promptStyle := tcell.StyleDefault.Foreground(r.theme.PromptFg)
	r.drawText(0, 0, "> "+m.Query(), promptStyle, width)

	counterStyle := tcell.StyleDefault.Foreground(r.theme.CounterFg)
	counter := fmt.Sprintf("%d/%d", len(m.results), len(m.candidates))
	r.drawText(0, 1, counter, counterStyle, width)

	listHeight := height - listTop
	if listHeight > 0 {
		start := 0
		if m.cursor >= listHeight {
			start = m.cursor - listHeight + 1
		}
		for row := 0; row < listHeight; row++ {
			idx := start + row
			if idx >= len(m.results) {
				break
			}
			r.drawResult(m.results[idx], idx == m.cursor, listTop+row, width)
		}
	}

	r.screen.Show()
}

func (r *renderer) drawResult(res Result, selected bool, row, width int) {
	style := tcell.StyleDefault.Foreground(r.theme.ResultFg)
	highlight := tcell.StyleDefault.Foreground(r.theme.HighlightFg).Bold(true)
	if selected {
		style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		highlight = style.Bold(true)
	}

	runes := []rune(res.Candidate.RelPath)
	marks := highlightMask(res, len(runes))

	x := 0
	for i, ru := range runes {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			continue
		}
		if x+w > width {
			break
		}
		st := style
		if marks[i] {
			st = highlight
		}
		r.screen.SetContent(x, row, ru, nil, st)
		x += w
	}

	if selected {
		for ; x < width; x++ {
			r.screen.SetContent(x, row, ' ', nil, style)
		}
	}
}

// highlightMask flags each displayed rune that falls inside a match
// range. Basename ranges are shifted to the basename's position at the
// tail of the relative path.
func highlightMask(res Result, n int) []bool {
	marks := make([]bool, n)
	mark := func(ranges []scoring.Range, shift int) {
		for _, rg := range ranges {
			for i := rg.Start + shift; i < rg.End+shift; i++ {
				if i >= 0 && i < n {
					marks[i] = true
				}
			}
		}
	}

	if len(res.Score.PathMatch) > 0 {
		mark(res.Score.PathMatch, 0)
		return marks
	}
	shift := n - len([]rune(res.Candidate.Name))
	mark(res.Score.BasenameMatch, shift)
	return marks
}

func (r *renderer) drawText(x, y int, text string, style tcell.Style, maxWidth int) {
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			continue
		}
		if x+w > maxWidth {
			return
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += w
	}
}
