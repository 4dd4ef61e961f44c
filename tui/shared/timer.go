package shared

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerPolicy decides what happens to a pending timer when its owner is
// triggered again before it fires.
type TimerPolicy int

const (
	// TimerReset makes the latest trigger the only one whose timer counts.
	TimerReset TimerPolicy = iota
	// TimerStack lets every timer fire independently; an earlier one can end
	// a later trigger's window early.
	TimerStack
	// TimerIgnore drops triggers while a window is open.
	TimerIgnore
)

// ParseTimerPolicy maps a config value to a policy, defaulting to TimerReset.
func ParseTimerPolicy(s string) TimerPolicy {
	switch s {
	case "stack":
		return TimerStack
	case "ignore":
		return TimerIgnore
	default:
		return TimerReset
	}
}

func (p TimerPolicy) String() string {
	switch p {
	case TimerStack:
		return "stack"
	case TimerIgnore:
		return "ignore"
	default:
		return "reset"
	}
}

// Scheduler returns a command that delivers msg after d.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// Tick is the production Scheduler.
func Tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
