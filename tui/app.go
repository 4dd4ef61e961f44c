package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/copylink/config"
	"github.com/dylan/copylink/page"
	"github.com/dylan/copylink/tui/button"
	"github.com/dylan/copylink/tui/copyhandler"
	"github.com/dylan/copylink/tui/help"
	"github.com/dylan/copylink/tui/shared"
	"github.com/dylan/copylink/tui/toast"
)

// Deps are the collaborators the app does not build itself.
type Deps struct {
	Copier   copyhandler.Copier
	Logger   *slog.Logger
	Schedule shared.Scheduler // nil uses shared.Tick
}

type App struct {
	cfg   config.Config
	title string
	page  page.Page

	viewport   viewport.Model
	buttons    []button.Model
	cursor     int
	listOffset int
	listHeight int
	listTop    int // screen row of the first visible button

	toast    *toast.Model
	handler  *copyhandler.Handler
	helpView help.Model
	showHelp bool
	logger   *slog.Logger

	width  int
	height int
}

func NewApp(cfg config.Config, pg page.Page, deps Deps) (App, error) {
	theme := cfg.ResolvedTheme()
	shared.InitStyles(theme)
	pg.SetStyle(theme.Markdown)

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	schedule := deps.Schedule
	if schedule == nil {
		schedule = shared.Tick
	}

	delay := cfg.ResolvedDelay()
	ts := toast.New(delay, shared.ParseTimerPolicy(cfg.ResolvedToastTimers()), schedule)
	handler, err := copyhandler.New(deps.Copier, ts, copyhandler.Options{
		CopiedLabel:    cfg.ResolvedCopiedLabel(),
		Message:        cfg.ResolvedMessage(),
		FailureMessage: cfg.ResolvedFailureMessage(),
		Timeout:        cfg.ResolvedTimeout(),
		Logger:         logger,
	})
	if err != nil {
		return App{}, err
	}

	title := cfg.Page.Title
	if title == "" {
		title = pg.Title()
	}
	if title == "" {
		title = cfg.WindowTitle()
	}

	opts := button.Options{
		Delay:    delay,
		Policy:   shared.ParseTimerPolicy(cfg.ResolvedReclick()),
		Schedule: schedule,
	}
	var buttons []button.Model
	for _, t := range pg.Targets() {
		buttons = append(buttons, button.New(len(buttons), t.Label, t.Payload, cfg.ResolvedButtonLabel(), opts))
	}
	for _, l := range cfg.Links {
		label := l.Label
		if label == "" {
			label = l.URL
		}
		buttons = append(buttons, button.New(len(buttons), label, l.URL, cfg.ResolvedButtonLabel(), opts))
	}
	logger.Debug("app ready", "title", title, "buttons", len(buttons))

	return App{
		cfg:      cfg,
		title:    title,
		page:     pg,
		buttons:  buttons,
		toast:    ts,
		handler:  handler,
		helpView: help.New(title),
		logger:   logger,
	}, nil
}

func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle(a.title)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutSizes()
		a.helpView.SetSize(msg.Width, msg.Height)
		return a, nil

	case shared.CopyResultMsg:
		b := a.button(msg.ButtonID)
		return a, a.handler.Complete(b, msg)

	case shared.ButtonRevertMsg:
		if b := a.button(msg.ButtonID); b != nil {
			*b, _ = b.Update(msg)
		}
		return a, nil

	case shared.ToastHideMsg:
		return a, a.toast.Update(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help toggle is global
	if key.Matches(msg, shared.Keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	if key.Matches(msg, shared.Keys.Escape) {
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		a.toast.Dismiss()
		return a, nil
	}

	// If help is shown, any key closes it
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, shared.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		a.scrollList()
		return a, nil

	case key.Matches(msg, shared.Keys.Down):
		if a.cursor < len(a.buttons)-1 {
			a.cursor++
		}
		a.scrollList()
		return a, nil

	case key.Matches(msg, shared.Keys.Copy):
		return a, a.activate(a.cursor)

	case key.Matches(msg, shared.Keys.PageUp):
		a.viewport.HalfViewUp()
		return a, nil

	case key.Matches(msg, shared.Keys.PageDown):
		a.viewport.HalfViewDown()
		return a, nil

	case key.Matches(msg, shared.Keys.Top):
		a.viewport.GotoTop()
		return a, nil

	case key.Matches(msg, shared.Keys.Bottom):
		a.viewport.GotoBottom()
		return a, nil
	}

	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		return a, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		row := msg.Y - a.listTop
		idx := a.listOffset + row
		if row >= 0 && row < a.listHeight && idx < len(a.buttons) {
			a.cursor = idx
			return a, a.activate(idx)
		}
		return a, nil
	}

	// Wheel scrolls the page
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a *App) activate(idx int) tea.Cmd {
	b := a.button(idx)
	if b == nil {
		return nil
	}
	return a.handler.Activate(b)
}

func (a *App) button(id int) *button.Model {
	if id < 0 || id >= len(a.buttons) {
		return nil
	}
	return &a.buttons[id]
}

func (a *App) layoutSizes() {
	// title + divider + status bar
	free := a.height - 3
	if free < 2 {
		free = 2
	}

	list := len(a.buttons)
	if limit := free / 2; list > limit {
		list = limit
	}
	if list < 1 {
		list = 1
	}
	pageH := free - list
	if a.page.Empty() {
		pageH = 0
		list = free + 1 // divider is dropped too
	}
	a.listHeight = list

	a.viewport = viewport.New(a.width, pageH)
	a.viewport.YPosition = 1
	a.viewport.SetContent(a.page.Render(a.width))

	if pageH > 0 {
		a.listTop = 1 + pageH + 1
	} else {
		a.listTop = 1
	}
	a.scrollList()
}

func (a *App) scrollList() {
	if a.listHeight <= 0 {
		return
	}
	if a.cursor < a.listOffset {
		a.listOffset = a.cursor
	}
	if a.cursor >= a.listOffset+a.listHeight {
		a.listOffset = a.cursor - a.listHeight + 1
	}
}

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}

	var b strings.Builder
	b.WriteString(shared.TitleStyle.Width(a.width).Render(a.title))
	b.WriteString("\n")

	if !a.page.Empty() {
		b.WriteString(a.viewport.View())
		b.WriteString("\n")
		b.WriteString(shared.DividerStyle.Render(strings.Repeat("─", max(a.width, 1))))
		b.WriteString("\n")
	}

	b.WriteString(a.renderButtons())
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderButtons() string {
	var b strings.Builder
	if len(a.buttons) == 0 {
		b.WriteString(shared.LinkURLStyle.Render("  No links on this page"))
		b.WriteString("\n")
		for i := 1; i < a.listHeight; i++ {
			b.WriteString("\n")
		}
		return b.String()
	}

	end := min(a.listOffset+a.listHeight, len(a.buttons))
	for i := a.listOffset; i < end; i++ {
		b.WriteString(a.buttons[i].View(i == a.cursor))
		b.WriteString("\n")
	}
	for i := end - a.listOffset; i < a.listHeight; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderStatusBar() string {
	parts := []string{a.title}
	if len(a.buttons) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", a.cursor+1, len(a.buttons)))
	}
	status := strings.Join(parts, " │ ")
	if a.toast.Visible() {
		status += " │ " + a.toast.View()
	}
	status += " │ ? for help"

	return shared.StatusBarStyle.Width(a.width).Render(status)
}
