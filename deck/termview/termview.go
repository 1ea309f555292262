// Package termview previews the deck in a terminal.
//
// View implements render.Sink. Its mutex is the display lock; the bubbletea
// program is woken through a one-slot channel and copies the state on redraw.
package termview

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"taskdeck/deck/scroll"
	"taskdeck/deck/taskstore"
	"taskdeck/deck/text"
)

type slot struct {
	summary string
	due     string
}

type state struct {
	clock string
	count int
	slots [scroll.VisibleSlots]slot
}

// View is a terminal Sink.
type View struct {
	mu      sync.Mutex
	st      state
	changed chan struct{}
	done    chan struct{}
}

func New() *View {
	return &View{
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (v *View) Lock()   { v.mu.Lock() }
func (v *View) Unlock() { v.mu.Unlock() }

func (v *View) UpdateVisible(slots []taskstore.Record) {
	for i := range v.st.slots {
		if i < len(slots) && slots[i].Valid {
			v.st.slots[i] = slot{summary: slots[i].Summary.String(), due: slots[i].Due.String()}
			continue
		}
		v.st.slots[i] = slot{}
	}
	v.notify()
}

func (v *View) UpdateClock(t text.Text) {
	v.st.clock = t.String()
	v.notify()
}

func (v *View) UpdateCount(n int) {
	v.st.count = n
	v.notify()
}

func (v *View) notify() {
	select {
	case v.changed <- struct{}{}:
	default:
	}
}

func (v *View) snapshot() state {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.st
}

type changedMsg struct{}

func (v *View) wait() tea.Msg {
	select {
	case <-v.changed:
		return changedMsg{}
	case <-v.done:
		return nil
	}
}

// Run shows the preview until ctx is done or the user quits with q.
func (v *View) Run(ctx context.Context) error {
	defer close(v.done)
	p := tea.NewProgram(model{v: v, st: v.snapshot(), width: 48}, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

type model struct {
	v     *View
	st    state
	width int
}

func (m model) Init() tea.Cmd { return m.v.wait }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case changedMsg:
		m.st = m.v.snapshot()
		return m, m.v.wait
	}
	return m, nil
}

func (m model) View() string { return render(m.st, m.width) }

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5CC8FF"))
	countStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5C2E7"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	dueStyle     = lipgloss.NewStyle().Faint(true)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func render(st state, width int) string {
	inner := max(width-4, 16)

	clock := runewidth.Truncate(st.clock, inner-6, "…")
	count := strconv.Itoa(st.count)
	gap := max(inner-runewidth.StringWidth(clock)-runewidth.StringWidth(count), 1)

	var b strings.Builder
	b.WriteString(headerStyle.Render(clock))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(countStyle.Render(count))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", inner))
	for _, s := range st.slots {
		b.WriteByte('\n')
		b.WriteString(summaryStyle.Render(runewidth.Truncate(s.summary, inner, "…")))
		b.WriteByte('\n')
		b.WriteString(dueStyle.Render(runewidth.Truncate(s.due, inner, "…")))
	}
	return frameStyle.Render(b.String())
}
