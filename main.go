package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/copylink/clipboard"
	"github.com/dylan/copylink/config"
	"github.com/dylan/copylink/logging"
	"github.com/dylan/copylink/page"
	"github.com/dylan/copylink/tui"
	"github.com/mattn/go-isatty"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/copylink/config.toml)")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: copylink [flags] [page.md]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	path := *configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		// If using default path and file doesn't exist, use empty config
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg = config.Config{}
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if flag.NArg() > 0 {
		cfg.Page.Path = flag.Arg(0)
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	logger, closeLog, err := logging.Setup(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var pg page.Page
	if cfg.Page.Path != "" {
		pg, err = page.Load(cfg.Page.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading page: %v\n", err)
			os.Exit(1)
		}
	}
	if len(pg.Targets()) == 0 && len(cfg.Links) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to copy: pass a Markdown page with links or add [[link]] entries to the config")
		os.Exit(1)
	}

	copier := clipboard.NewCopier(clipboard.System{}, fallbackWriter(cfg, terminalOut()), logger)
	app, err := tui.NewApp(cfg, pg, tui.Deps{Copier: copier, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fallbackWriter builds the fallback for the resolved config. tty receives
// OSC 52 sequences and is nil when stderr is not a terminal.
func fallbackWriter(cfg config.Config, tty io.Writer) clipboard.Writer {
	if cfg.ResolvedFallback() == config.FallbackOSC52 {
		return clipboard.OSC52{Out: tty, Mode: cfg.Copy.OSC52Mode}
	}
	return clipboard.Command{Argv: cfg.ResolvedFallbackCommand()}
}

// terminalOut returns stderr when it is a terminal. stdout belongs to the
// renderer, so OSC 52 sequences go to the terminal through stderr.
func terminalOut() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return os.Stderr
	}
	return nil
}
