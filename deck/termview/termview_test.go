package termview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
)

func TestSinkUpdatesStateAndWakes(t *testing.T) {
	v := New()
	v.Lock()
	v.UpdateCount(4)
	v.UpdateClock(text.New("11-15 06:13", 32))
	v.UpdateVisible([]taskstore.Record{
		{Summary: text.New("写周报", 64), Due: text.New("11月15日06:13", 32), Valid: true},
		{},
	})
	v.Unlock()

	if msg := v.wait(); msg != (changedMsg{}) {
		t.Fatalf("wait = %#v", msg)
	}
	st := v.snapshot()
	if st.count != 4 || st.clock != "11-15 06:13" {
		t.Fatalf("state = %+v", st)
	}
	if st.slots[0].summary != "写周报" || st.slots[1] != (slot{}) || st.slots[2] != (slot{}) {
		t.Fatalf("slots = %+v", st.slots)
	}
}

func TestRenderFitsWidth(t *testing.T) {
	st := state{clock: "11-15 06:13", count: 12}
	st.slots[0] = slot{summary: strings.Repeat("很长的任务", 20), due: "截止: 11-15 06:13"}

	out := render(st, 40)
	for _, want := range []string{"11-15 06:13", "12", "截止: 11-15 06:13", "…"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
}

func TestModelQuitsOnQ(t *testing.T) {
	m := model{v: New(), width: 40}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not return tea.Quit")
	}
}
