package picker

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/quickopen/internal/walk"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	scr.SetSize(80, 24)
	return scr
}

func injectKeys(scr tcell.SimulationScreen, runes string, keys ...tcell.Key) {
	for _, r := range runes {
		scr.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	for _, k := range keys {
		scr.InjectKey(k, 0, tcell.ModNone)
	}
}

type runOutcome struct {
	selected walk.Candidate
	accepted bool
}

func runPicker(t *testing.T, scr tcell.SimulationScreen, candidates []walk.Candidate) runOutcome {
	t.Helper()
	done := make(chan runOutcome, 1)
	go func() {
		selected, accepted := Run(scr, candidates)
		done <- runOutcome{selected: selected, accepted: accepted}
	}()
	select {
	case out := <-done:
		return out
	case <-time.After(5 * time.Second):
		t.Fatalf("picker did not finish")
		return runOutcome{}
	}
}

func TestRun_TypeAndAccept(t *testing.T) {
	scr := newTestScreen(t)
	defer scr.Fini()

	injectKeys(scr, "mgo", tcell.KeyEnter)
	out := runPicker(t, scr, testCandidates())

	if !out.accepted {
		t.Fatalf("expected an accepted selection")
	}
	if out.selected.RelPath != "cmd/quickopen/main.go" {
		t.Errorf("selected %q, want cmd/quickopen/main.go", out.selected.RelPath)
	}
}

func TestRun_EscapeCancels(t *testing.T) {
	scr := newTestScreen(t)
	defer scr.Fini()

	injectKeys(scr, "ma", tcell.KeyEscape)
	out := runPicker(t, scr, testCandidates())

	if out.accepted {
		t.Errorf("escape should cancel, got selection %q", out.selected.RelPath)
	}
}

func TestRun_CursorMovesSelection(t *testing.T) {
	scr := newTestScreen(t)
	defer scr.Fini()

	// "re" ranks README.md, render.go, reducer.go; Down selects the
	// second.
	injectKeys(scr, "re", tcell.KeyDown, tcell.KeyEnter)
	out := runPicker(t, scr, testCandidates())

	if !out.accepted {
		t.Fatalf("expected an accepted selection")
	}
	if out.selected.RelPath != "internal/picker/render.go" {
		t.Errorf("selected %q, want internal/picker/render.go", out.selected.RelPath)
	}
}

func TestRun_BackspaceReRanks(t *testing.T) {
	scr := newTestScreen(t)
	defer scr.Fini()

	// "rex" matches nothing; deleting the x restores the "re" ranking.
	injectKeys(scr, "rex", tcell.KeyBackspace2, tcell.KeyEnter)
	out := runPicker(t, scr, testCandidates())

	if !out.accepted {
		t.Fatalf("expected an accepted selection")
	}
	if out.selected.RelPath != "README.md" {
		t.Errorf("selected %q, want README.md", out.selected.RelPath)
	}
}

func TestModel_CursorClamping(t *testing.T) {
	m := NewModel(testCandidates())

	m.MoveCursor(-10)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving above the top, want 0", m.cursor)
	}
	m.MoveCursor(100)
	if m.cursor != len(m.results)-1 {
		t.Errorf("cursor = %d after moving past the end, want %d", m.cursor, len(m.results)-1)
	}

	m.AppendRune('z')
	m.AppendRune('z')
	if _, ok := m.Selected(); ok {
		t.Errorf("no results should mean no selection")
	}
}
