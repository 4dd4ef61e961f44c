package shared

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/copylink/config"
)

var (
	// Page header
	TitleStyle lipgloss.Style

	// Buttons
	ButtonStyle       lipgloss.Style
	ButtonCopiedStyle lipgloss.Style
	LinkLabelStyle    lipgloss.Style
	LinkURLStyle      lipgloss.Style
	CursorStyle       lipgloss.Style
	DividerStyle      lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Help styles
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpOverlayStyle lipgloss.Style

	// Feedback
	FeedbackInfoStyle    lipgloss.Style
	FeedbackSuccessStyle lipgloss.Style
	FeedbackErrorStyle   lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.ThemeConfig) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FG)).
		Background(lipgloss.Color(theme.CursorBG)).
		Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ButtonFG)).
		Background(lipgloss.Color(theme.ButtonBG)).
		Padding(0, 1)

	ButtonCopiedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.CopiedFG)).
		Background(lipgloss.Color(theme.CopiedBG)).
		Bold(true).
		Padding(0, 1)

	LinkLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	LinkURLStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	DividerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		Padding(1, 2)

	FeedbackInfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	FeedbackSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackSuccessFG)).
		Background(lipgloss.Color(theme.FeedbackSuccessBG)).
		Padding(0, 1)

	FeedbackErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackErrorFG)).
		Background(lipgloss.Color(theme.FeedbackErrorBG)).
		Padding(0, 1)
}

// FeedbackStyle returns the toast style for a level.
func FeedbackStyle(level FeedbackLevel) lipgloss.Style {
	switch level {
	case FeedbackSuccess:
		return FeedbackSuccessStyle
	case FeedbackError:
		return FeedbackErrorStyle
	default:
		return FeedbackInfoStyle
	}
}

func init() {
	InitStyles(config.DefaultTheme())
}
