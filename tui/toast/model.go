// Package toast is the transient status-bar notification shared by every
// copy button.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/copylink/tui/shared"
)

// Model is owned by the app and handed to whoever needs to notify, so it is
// used through a pointer.
type Model struct {
	Message string
	Level   shared.FeedbackLevel

	visible  bool
	seq      int
	delay    time.Duration
	policy   shared.TimerPolicy
	schedule shared.Scheduler
}

// New returns a hidden toast. TimerIgnore is treated as TimerReset: a new
// message always replaces the current one.
func New(delay time.Duration, policy shared.TimerPolicy, schedule shared.Scheduler) *Model {
	if schedule == nil {
		schedule = shared.Tick
	}
	if policy == shared.TimerIgnore {
		policy = shared.TimerReset
	}
	return &Model{delay: delay, policy: policy, schedule: schedule}
}

// Notify shows message immediately and schedules the hide.
func (m *Model) Notify(message string, level shared.FeedbackLevel) tea.Cmd {
	m.Message = message
	m.Level = level
	m.visible = true
	m.seq++
	return m.schedule(m.delay, shared.ToastHideMsg{Seq: m.seq})
}

// Dismiss hides the toast now. Pending hide timers become no-ops.
func (m *Model) Dismiss() {
	m.visible = false
}

func (m *Model) Visible() bool {
	return m.visible
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	hide, ok := msg.(shared.ToastHideMsg)
	if !ok {
		return nil
	}
	if m.policy == shared.TimerReset && hide.Seq != m.seq {
		return nil
	}
	m.visible = false
	return nil
}

func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	return shared.FeedbackStyle(m.Level).Render(m.Message)
}
