package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is the legacy copy path: the payload is spooled into a temporary
// file which is fed as stdin to a copy utility such as pbcopy or xclip.
//
// The spool file is the scoped resource of this path: it exists only while
// the utility runs and is removed on every return path, including when the
// utility is missing or exits non-zero. Some utilities (clip.exe among them)
// also read a seekable file more reliably than a pipe.
type Command struct {
	Argv    []string
	TempDir string // empty uses os.TempDir
}

func (c Command) Write(ctx context.Context, text string) error {
	if len(c.Argv) == 0 {
		return fmt.Errorf("%w: no fallback command configured", ErrUnavailable)
	}

	f, err := os.CreateTemp(c.TempDir, "copylink-*.txt")
	if err != nil {
		return fmt.Errorf("creating spool file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("writing spool file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding spool file: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdin = f
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Argv[0], err, msg)
		}
		return fmt.Errorf("%s: %w", c.Argv[0], err)
	}
	return nil
}
