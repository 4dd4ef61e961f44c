package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/copylink/clipboard"
	"github.com/dylan/copylink/config"
	"github.com/dylan/copylink/page"
	"github.com/dylan/copylink/tui/copyhandler"
	"github.com/dylan/copylink/tui/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `# Sources

- [Curated](https://example.com/curated.json)
- [Full](https://example.com/all.json)
`

type harness struct {
	app    App
	copied []string
	timers []tea.Msg
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{}
	copier := clipboard.NewCopier(clipboard.WriterFunc(func(_ context.Context, text string) error {
		h.copied = append(h.copied, text)
		return nil
	}), nil, nil)

	cfg := config.Config{
		Links: []config.LinkConfig{{Label: "Pinned", URL: "https://example.com/pinned.json"}},
		Theme: config.ThemeConfig{Markdown: "notty"},
	}
	app, err := NewApp(cfg, page.Parse([]byte(doc)), Deps{
		Copier: copier,
		Schedule: func(_ time.Duration, msg tea.Msg) tea.Cmd {
			h.timers = append(h.timers, msg)
			return func() tea.Msg { return msg }
		},
	})
	require.NoError(t, err)
	h.app = app
	h.send(tea.WindowSizeMsg{Width: 80, Height: 20})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	m, cmd := h.app.Update(msg)
	h.app = m.(App)
	return cmd
}

// run executes an activation command and feeds its result back in.
func (h *harness) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	res, ok := cmd().(shared.CopyResultMsg)
	require.True(t, ok)
	h.send(res)
}

func TestNewApp_RequiresCopier(t *testing.T) {
	_, err := NewApp(config.Config{}, page.Parse(nil), Deps{})
	assert.ErrorIs(t, err, copyhandler.ErrNoCopier)
}

func TestNewApp_Buttons(t *testing.T) {
	h := newHarness(t)

	require.Len(t, h.app.buttons, 3)
	assert.Equal(t, "https://example.com/curated.json", h.app.buttons[0].Payload)
	assert.Equal(t, "https://example.com/all.json", h.app.buttons[1].Payload)
	assert.Equal(t, "Pinned", h.app.buttons[2].Caption)
	assert.Equal(t, "Sources", h.app.title)
	for _, b := range h.app.buttons {
		assert.Equal(t, "Copy", b.Label)
	}
}

func TestEnterCopiesSelectedLink(t *testing.T) {
	h := newHarness(t)

	h.run(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, []string{"https://example.com/curated.json"}, h.copied)
	assert.Equal(t, "Copied!", h.app.buttons[0].Label)
	assert.True(t, h.app.toast.Visible())
	assert.Contains(t, h.app.View(), "Link copied to clipboard")

	for _, msg := range h.timers {
		h.send(msg)
	}
	assert.Equal(t, "Copy", h.app.buttons[0].Label)
	assert.False(t, h.app.toast.Visible())
	assert.NotContains(t, h.app.View(), "Link copied to clipboard")
}

func TestCursorMovement(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, h.app.cursor, "cursor stops at the last button")

	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, h.app.cursor)

	h.run(t, h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}))
	assert.Equal(t, []string{"https://example.com/all.json"}, h.copied)
}

func TestMouseClickCopies(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(tea.MouseMsg{
		X:      4,
		Y:      h.app.listTop + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, 2, h.app.cursor)
	h.run(t, cmd)

	assert.Equal(t, []string{"https://example.com/pinned.json"}, h.copied)
	assert.True(t, h.app.buttons[2].Copied())
}

func TestMouseClickOutsideList(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(tea.MouseMsg{Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Empty(t, h.copied)
}

func TestHelpToggle(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, h.app.showHelp)
	assert.Contains(t, h.app.View(), "Sources Help")

	// any key closes help without acting
	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, h.app.showHelp)
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestNoPage_PinnedLinksOnly(t *testing.T) {
	copier := clipboard.NewCopier(clipboard.WriterFunc(func(context.Context, string) error { return nil }), nil, nil)
	cfg := config.Config{Links: []config.LinkConfig{{URL: "https://example.com/only"}}}

	app, err := NewApp(cfg, page.Page{}, Deps{Copier: copier})
	require.NoError(t, err)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	app = m.(App)

	assert.Equal(t, "copylink", app.title)
	assert.Equal(t, 1, app.listTop)
	require.Len(t, app.buttons, 1)
	assert.Equal(t, "https://example.com/only", app.buttons[0].Caption)
	assert.Contains(t, app.View(), "https://example.com/only")
}

func TestNewApp_RejectsTypedNilCopier(t *testing.T) {
	var copier *clipboard.Copier
	_, err := NewApp(config.Config{}, page.Parse(nil), Deps{Copier: copier})
	assert.ErrorIs(t, err, copyhandler.ErrNoCopier)
}

func TestEscape(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, h.app.showHelp)
	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, h.app.showHelp)

	h.run(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))
	require.True(t, h.app.toast.Visible())
	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, h.app.toast.Visible())
	assert.True(t, h.app.buttons[0].Copied(), "esc only dismisses the message")
}
