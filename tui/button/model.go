package button

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/copylink/tui/shared"
)

// Options controls how long the copied state lasts and how re-clicks during
// that window are treated.
type Options struct {
	Delay    time.Duration
	Policy   shared.TimerPolicy
	Schedule shared.Scheduler
}

// Model is one copy button. Label is the button's current text; Caption is the
// link description rendered beside it.
type Model struct {
	ID      int
	Caption string
	Payload string
	Label   string

	copied   bool
	baseline string // label captured when the copied state began
	seq      int
	opts     Options
}

func New(id int, caption, payload, label string, opts Options) Model {
	if opts.Schedule == nil {
		opts.Schedule = shared.Tick
	}
	return Model{
		ID:      id,
		Caption: caption,
		Payload: payload,
		Label:   label,
		opts:    opts,
	}
}

// Copied reports whether the button is showing its copied state.
func (m Model) Copied() bool {
	return m.copied
}

// Busy reports whether an activation should be dropped under TimerIgnore.
func (m Model) Busy() bool {
	return m.copied && m.opts.Policy == shared.TimerIgnore
}

// MarkCopied switches the button to its copied state and schedules the revert.
// The baseline label is only captured from the idle state, so re-clicks never
// record the copied label as the label to restore.
func (m *Model) MarkCopied(copiedLabel string) tea.Cmd {
	if m.Busy() {
		return nil
	}
	if !m.copied {
		m.baseline = m.Label
	}
	m.Label = copiedLabel
	m.copied = true
	m.seq++
	return m.opts.Schedule(m.opts.Delay, shared.ButtonRevertMsg{ButtonID: m.ID, Seq: m.seq})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(shared.ButtonRevertMsg); ok && msg.ButtonID == m.ID {
		m.revert(msg.Seq)
	}
	return m, nil
}

func (m *Model) revert(seq int) {
	if !m.copied {
		return
	}
	// Under TimerStack every pending revert counts, the oldest wins.
	if m.opts.Policy != shared.TimerStack && seq != m.seq {
		return
	}
	m.Label = m.baseline
	m.copied = false
}

func (m Model) View(selected bool) string {
	btn := shared.ButtonStyle.Render(m.Label)
	if m.copied {
		btn = shared.ButtonCopiedStyle.Render(m.Label)
	}

	line := btn + " " + shared.LinkLabelStyle.Render(m.Caption)
	if m.Caption != m.Payload {
		line += " " + shared.LinkURLStyle.Render(m.Payload)
	}
	if selected {
		return shared.CursorStyle.Render("▸ ") + line
	}
	return "  " + line
}
