package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Theme ThemeConfig  `toml:"theme"`
	Page  PageConfig   `toml:"page"`
	Links []LinkConfig `toml:"link"`
	Copy  CopyConfig   `toml:"copy"`
	Log   LogConfig    `toml:"log"`
}

type PageConfig struct {
	Path  string `toml:"path,omitempty"`
	Title string `toml:"title,omitempty"`
}

// LinkConfig is a pinned copy target shown after the page's own links.
type LinkConfig struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

type CopyConfig struct {
	ButtonLabel     string   `toml:"button_label,omitempty"`
	CopiedLabel     string   `toml:"copied_label,omitempty"`
	Message         string   `toml:"message,omitempty"`
	FailureMessage  string   `toml:"failure_message,omitempty"`
	DelayMS         int      `toml:"delay_ms,omitempty"`
	TimeoutMS       int      `toml:"timeout_ms,omitempty"`
	Fallback        string   `toml:"fallback,omitempty"`         // "command" or "osc52"
	FallbackCommand []string `toml:"fallback_command,omitempty"` // argv, payload on stdin
	OSC52Mode       string   `toml:"osc52_mode,omitempty"`       // "", "tmux" or "screen"
	Reclick         string   `toml:"reclick,omitempty"`          // "reset", "stack" or "ignore"
	ToastTimers     string   `toml:"toast_timers,omitempty"`     // "reset" or "stack"
}

type LogConfig struct {
	Level  string `toml:"level,omitempty"`
	Format string `toml:"format,omitempty"`
	File   string `toml:"file,omitempty"`
}

type ThemeConfig struct {
	FG                string `toml:"fg,omitempty"`
	Accent            string `toml:"accent,omitempty"`
	Muted             string `toml:"muted,omitempty"`
	Dim               string `toml:"dim,omitempty"`
	CursorBG          string `toml:"cursor_bg,omitempty"`
	StatusBarBG       string `toml:"status_bar_bg,omitempty"`
	StatusBarFG       string `toml:"status_bar_fg,omitempty"`
	ButtonFG          string `toml:"button_fg,omitempty"`
	ButtonBG          string `toml:"button_bg,omitempty"`
	CopiedFG          string `toml:"copied_fg,omitempty"`
	CopiedBG          string `toml:"copied_bg,omitempty"`
	FeedbackSuccessFG string `toml:"feedback_success_fg,omitempty"`
	FeedbackSuccessBG string `toml:"feedback_success_bg,omitempty"`
	FeedbackErrorFG   string `toml:"feedback_error_fg,omitempty"`
	FeedbackErrorBG   string `toml:"feedback_error_bg,omitempty"`
	Markdown          string `toml:"markdown,omitempty"` // glamour style: "auto", "dark", "light", "notty"
}

const (
	PolicyReset  = "reset"
	PolicyStack  = "stack"
	PolicyIgnore = "ignore"

	FallbackCommand = "command"
	FallbackOSC52   = "osc52"
)

// DefaultConfigPath returns ~/.config/copylink/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "copylink", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	absConfigDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return cfg, fmt.Errorf("resolving config directory: %w", err)
	}

	// Resolve page path against the config dir
	if cfg.Page.Path != "" {
		cfg.Page.Path = expandHome(cfg.Page.Path)
		if !filepath.IsAbs(cfg.Page.Path) {
			cfg.Page.Path = filepath.Join(absConfigDir, cfg.Page.Path)
		}
	}
	cfg.Log.File = expandHome(cfg.Log.File)

	for i, link := range cfg.Links {
		if strings.TrimSpace(link.URL) == "" {
			return cfg, fmt.Errorf("link %d (%q): url is required", i, link.Label)
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Copy.Reclick {
	case "", PolicyReset, PolicyStack, PolicyIgnore:
	default:
		return fmt.Errorf("copy.reclick: unknown policy %q", c.Copy.Reclick)
	}
	switch c.Copy.ToastTimers {
	case "", PolicyReset, PolicyStack:
	default:
		return fmt.Errorf("copy.toast_timers: unknown policy %q", c.Copy.ToastTimers)
	}
	switch c.Copy.Fallback {
	case "", FallbackCommand, FallbackOSC52:
	default:
		return fmt.Errorf("copy.fallback: unknown fallback %q", c.Copy.Fallback)
	}
	return nil
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

// DefaultTheme returns the Vesper color palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		FG:                "#ffffff",
		Accent:            "#ffc799",
		Muted:             "#505050",
		Dim:               "#a0a0a0",
		CursorBG:          "#2a2a2a",
		StatusBarBG:       "#1a1a1a",
		StatusBarFG:       "#a0a0a0",
		ButtonFG:          "#101010",
		ButtonBG:          "#ffc799",
		CopiedFG:          "#101010",
		CopiedBG:          "#99ffe4",
		FeedbackSuccessFG: "#99ffe4",
		FeedbackSuccessBG: "#1a3a2a",
		FeedbackErrorFG:   "#ff8080",
		FeedbackErrorBG:   "#3a1a1a",
		Markdown:          "dark",
	}
}

// ResolvedTheme merges config theme with defaults for any unset fields.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DefaultTheme()
	return ThemeConfig{
		FG:                pick(c.Theme.FG, d.FG),
		Accent:            pick(c.Theme.Accent, d.Accent),
		Muted:             pick(c.Theme.Muted, d.Muted),
		Dim:               pick(c.Theme.Dim, d.Dim),
		CursorBG:          pick(c.Theme.CursorBG, d.CursorBG),
		StatusBarBG:       pick(c.Theme.StatusBarBG, d.StatusBarBG),
		StatusBarFG:       pick(c.Theme.StatusBarFG, d.StatusBarFG),
		ButtonFG:          pick(c.Theme.ButtonFG, d.ButtonFG),
		ButtonBG:          pick(c.Theme.ButtonBG, d.ButtonBG),
		CopiedFG:          pick(c.Theme.CopiedFG, d.CopiedFG),
		CopiedBG:          pick(c.Theme.CopiedBG, d.CopiedBG),
		FeedbackSuccessFG: pick(c.Theme.FeedbackSuccessFG, d.FeedbackSuccessFG),
		FeedbackSuccessBG: pick(c.Theme.FeedbackSuccessBG, d.FeedbackSuccessBG),
		FeedbackErrorFG:   pick(c.Theme.FeedbackErrorFG, d.FeedbackErrorFG),
		FeedbackErrorBG:   pick(c.Theme.FeedbackErrorBG, d.FeedbackErrorBG),
		Markdown:          pick(c.Theme.Markdown, d.Markdown),
	}
}

// ResolvedButtonLabel returns the idle button label, "Copy" by default.
func (c Config) ResolvedButtonLabel() string {
	return pick(c.Copy.ButtonLabel, "Copy")
}

// ResolvedCopiedLabel returns the label shown while a button is in its copied state.
func (c Config) ResolvedCopiedLabel() string {
	return pick(c.Copy.CopiedLabel, "Copied!")
}

// ResolvedMessage returns the toast text for a successful copy.
func (c Config) ResolvedMessage() string {
	return pick(c.Copy.Message, "Link copied to clipboard")
}

// ResolvedFailureMessage returns the toast text shown when every copy path failed.
func (c Config) ResolvedFailureMessage() string {
	return pick(c.Copy.FailureMessage, "Could not copy link")
}

// ResolvedDelay returns the feedback display window, 2s by default.
func (c Config) ResolvedDelay() time.Duration {
	if c.Copy.DelayMS > 0 {
		return time.Duration(c.Copy.DelayMS) * time.Millisecond
	}
	return 2000 * time.Millisecond
}

// ResolvedTimeout bounds a single copy attempt, 5s by default.
func (c Config) ResolvedTimeout() time.Duration {
	if c.Copy.TimeoutMS > 0 {
		return time.Duration(c.Copy.TimeoutMS) * time.Millisecond
	}
	return 5 * time.Second
}

// ResolvedFallback returns the configured fallback or the platform default.
func (c Config) ResolvedFallback() string {
	return pick(c.Copy.Fallback, DefaultFallback(runtime.GOOS))
}

// DefaultFallback picks a fallback that does not depend on the utilities the
// primary writer already shells out to. atotto/clipboard runs pbcopy, xclip,
// xsel or wl-copy on darwin and linux, so those platforms fall back to OSC 52.
// On windows the primary uses the Win32 API and clip.exe is independent of it.
func DefaultFallback(goos string) string {
	if goos == "windows" {
		return FallbackCommand
	}
	return FallbackOSC52
}

func (c Config) ResolvedReclick() string {
	return pick(c.Copy.Reclick, PolicyReset)
}

func (c Config) ResolvedToastTimers() string {
	return pick(c.Copy.ToastTimers, PolicyReset)
}

// ResolvedFallbackCommand returns the configured fallback argv or the platform default.
func (c Config) ResolvedFallbackCommand() []string {
	if len(c.Copy.FallbackCommand) > 0 {
		return c.Copy.FallbackCommand
	}
	return DefaultFallbackCommand(runtime.GOOS)
}

// DefaultFallbackCommand returns the legacy copy utility for goos, used when
// copy.fallback is "command".
func DefaultFallbackCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"pbcopy"}
	case "windows":
		return []string{"clip"}
	default:
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return []string{"wl-copy"}
		}
		return []string{"xclip", "-selection", "clipboard"}
	}
}

// WindowTitle returns the configured page title or "copylink" as fallback.
func (c Config) WindowTitle() string {
	return pick(c.Page.Title, "copylink")
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
